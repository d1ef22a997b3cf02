package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fjod/go_storefront/internal/domain"
)

// CartClient talks to the cart service. All operations are bearer
// authenticated; cart contents only ever change server-side.
type CartClient struct {
	c       *Client
	baseURL string
}

func NewCartClient(c *Client, baseURL string) *CartClient {
	return &CartClient{c: c, baseURL: baseURL}
}

type addItemDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (cc *CartClient) Items(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := cc.c.do(ctx, callOpts{
		method: http.MethodGet,
		url:    cc.baseURL + "/",
		authed: true,
		out:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch cart items: %w", err)
	}
	return out, nil
}

func (cc *CartClient) Summary(ctx context.Context) (domain.CartSummary, error) {
	var out domain.CartSummary
	err := cc.c.do(ctx, callOpts{
		method: http.MethodGet,
		url:    cc.baseURL + "/summary",
		authed: true,
		out:    &out,
	})
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("fetch cart summary: %w", err)
	}
	return out, nil
}

func (cc *CartClient) Add(ctx context.Context, productID int64, quantity int) (domain.CartItem, error) {
	var out domain.CartItem
	err := cc.c.do(ctx, callOpts{
		method: http.MethodPost,
		url:    cc.baseURL + "/",
		body:   addItemDTO{ProductID: productID, Quantity: quantity},
		authed: true,
		out:    &out,
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("add cart item: %w", err)
	}
	return out, nil
}

func (cc *CartClient) Remove(ctx context.Context, itemID int64) error {
	err := cc.c.do(ctx, callOpts{
		method: http.MethodDelete,
		url:    fmt.Sprintf("%s/%d", cc.baseURL, itemID),
		authed: true,
	})
	if err != nil {
		return fmt.Errorf("remove cart item %d: %w", itemID, err)
	}
	return nil
}
