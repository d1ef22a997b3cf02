package rest

import (
	"context"
	"fmt"
	"net/http"
)

// AuthClient talks to the authentication service. Neither operation sends a
// bearer token; login is how a token is obtained in the first place.
type AuthClient struct {
	c       *Client
	baseURL string
}

func NewAuthClient(c *Client, baseURL string) *AuthClient {
	return &AuthClient{c: c, baseURL: baseURL}
}

type credentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (a *AuthClient) Register(ctx context.Context, username, password string) error {
	return a.c.do(ctx, callOpts{
		method: http.MethodPost,
		url:    a.baseURL + "/register",
		body:   credentialsDTO{Username: username, Password: password},
	})
}

// Login exchanges credentials for a bearer token.
func (a *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	var out loginResponseDTO
	err := a.c.do(ctx, callOpts{
		method: http.MethodPost,
		url:    a.baseURL + "/login",
		body:   credentialsDTO{Username: username, Password: password},
		out:    &out,
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return out.AccessToken, nil
}
