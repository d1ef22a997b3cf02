package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fjod/go_storefront/internal/domain"
)

// ProductClient reads the public catalog. Listing is unauthenticated.
type ProductClient struct {
	c       *Client
	baseURL string
}

func NewProductClient(c *Client, baseURL string) *ProductClient {
	return &ProductClient{c: c, baseURL: baseURL}
}

func (p *ProductClient) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := p.c.do(ctx, callOpts{
		method: http.MethodGet,
		url:    p.baseURL,
		out:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (p *ProductClient) Get(ctx context.Context, id int64) (domain.Product, error) {
	var out domain.Product
	err := p.c.do(ctx, callOpts{
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/%d", p.baseURL, id),
		out:    &out,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return out, nil
}
