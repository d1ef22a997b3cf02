package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fjod/go_storefront/internal/domain"
)

// OrderClient talks to the order service: checkout (cart → order), the
// paginated listing, detail, and cancellation.
type OrderClient struct {
	c       *Client
	baseURL string
}

func NewOrderClient(c *Client, baseURL string) *OrderClient {
	return &OrderClient{c: c, baseURL: baseURL}
}

// Checkout converts the caller's current cart into an order. The cart is
// consumed server-side as a side effect.
func (oc *OrderClient) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResult, error) {
	var out domain.CheckoutResult
	err := oc.c.do(ctx, callOpts{
		method: http.MethodPost,
		url:    oc.baseURL + "/checkout",
		body:   req,
		authed: true,
		out:    &out,
	})
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("checkout: %w", err)
	}
	return out, nil
}

// List returns one page of the user's orders. An empty filter means all
// statuses.
func (oc *OrderClient) List(ctx context.Context, page, perPage int, filter domain.OrderStatus) (domain.OrderPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	if filter != "" {
		q.Set("status_filter", filter.String())
	}

	var out domain.OrderPage
	err := oc.c.do(ctx, callOpts{
		method: http.MethodGet,
		url:    oc.baseURL + "/?" + q.Encode(),
		authed: true,
		out:    &out,
	})
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (oc *OrderClient) Get(ctx context.Context, id int64) (domain.Order, error) {
	var out domain.Order
	err := oc.c.do(ctx, callOpts{
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/%d", oc.baseURL, id),
		authed: true,
		out:    &out,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %d: %w", id, err)
	}
	return out, nil
}

// Cancel requests cancellation. The service enforces eligibility itself and
// answers ineligible requests with a 400 whose detail explains why.
func (oc *OrderClient) Cancel(ctx context.Context, id int64) (domain.Order, error) {
	var out domain.Order
	err := oc.c.do(ctx, callOpts{
		method: http.MethodPut,
		url:    fmt.Sprintf("%s/%d/cancel", oc.baseURL, id),
		authed: true,
		out:    &out,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("cancel order %d: %w", id, err)
	}
	return out, nil
}
