package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/domain"
)

// cartAPIMock backs a real cart.Service in handler tests.
type cartAPIMock struct {
	items   []domain.CartItem
	summary domain.CartSummary

	itemsErr   error
	summaryErr error
	addErr     error
	removeErr  error
}

func (m *cartAPIMock) Items(context.Context) ([]domain.CartItem, error) {
	if m.itemsErr != nil {
		return nil, m.itemsErr
	}
	return m.items, nil
}

func (m *cartAPIMock) Summary(context.Context) (domain.CartSummary, error) {
	if m.summaryErr != nil {
		return domain.CartSummary{}, m.summaryErr
	}
	return m.summary, nil
}

func (m *cartAPIMock) Add(context.Context, int64, int) (domain.CartItem, error) {
	if m.addErr != nil {
		return domain.CartItem{}, m.addErr
	}
	return domain.CartItem{}, nil
}

func (m *cartAPIMock) Remove(context.Context, int64) error {
	return m.removeErr
}

// orderAPIMock serves both the checkout submitter and the orders manager.
type orderAPIMock struct {
	checkoutResult domain.CheckoutResult
	checkoutErr    error
	page           domain.OrderPage
	order          domain.Order
	cancelled      domain.Order
	listErr        error
	getErr         error
	cancelErr      error

	checkoutCalls int
	listCalls     []int // pages requested
}

func (m *orderAPIMock) Checkout(context.Context, domain.CheckoutRequest) (domain.CheckoutResult, error) {
	m.checkoutCalls++
	if m.checkoutErr != nil {
		return domain.CheckoutResult{}, m.checkoutErr
	}
	return m.checkoutResult, nil
}

func (m *orderAPIMock) List(_ context.Context, page, _ int, _ domain.OrderStatus) (domain.OrderPage, error) {
	m.listCalls = append(m.listCalls, page)
	if m.listErr != nil {
		return domain.OrderPage{}, m.listErr
	}
	return m.page, nil
}

func (m *orderAPIMock) Get(context.Context, int64) (domain.Order, error) {
	if m.getErr != nil {
		return domain.Order{}, m.getErr
	}
	return m.order, nil
}

func (m *orderAPIMock) Cancel(context.Context, int64) (domain.Order, error) {
	if m.cancelErr != nil {
		return domain.Order{}, m.cancelErr
	}
	return m.cancelled, nil
}

type cartSourceStub struct {
	snap domain.CartSnapshot
	ok   bool
}

func (s cartSourceStub) Snapshot() (domain.CartSnapshot, bool) { return s.snap, s.ok }

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
