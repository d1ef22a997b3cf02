package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fjod/go_storefront/internal/rest"
	"github.com/fjod/go_storefront/internal/session"
)

type AuthHandler struct {
	auth    *rest.AuthClient
	session *session.Store
}

func NewAuthHandler(auth *rest.AuthClient, store *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, session: store}
}

type credentialsRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponseDTO struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_credentials", "username and password are required")
		return
	}

	if err := h.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		respondComponentError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Login exchanges credentials for a token and installs it in the session
// store, making every workflow surface authenticated at once.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_credentials", "username and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondComponentError(w, err)
		return
	}

	// The auth service identifies users by username; when that is an email
	// address the quick-pay flow reuses it as the contact email.
	email := ""
	if strings.Contains(req.Username, "@") {
		email = req.Username
	}
	h.session.Set(token, email)

	respondJSON(w, http.StatusOK, sessionResponseDTO{Authenticated: true, Email: email})
}

// Logout clears the session. Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Clear()
	respondJSON(w, http.StatusOK, sessionResponseDTO{Authenticated: false})
}

// Session reports the current authentication state.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	state := h.session.Current()
	respondJSON(w, http.StatusOK, sessionResponseDTO{
		Authenticated: state.Authenticated(),
		Email:         state.Email,
	})
}
