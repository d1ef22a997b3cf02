package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/rest"
)

func TestCartGet_Success(t *testing.T) {
	api := &cartAPIMock{
		items:   []domain.CartItem{{ID: 1, ProductID: 10, Quantity: 3, UnitPrice: 15000, TotalPrice: 45000}},
		summary: domain.CartSummary{TotalItems: 3, TotalAmount: 45000, ItemsCount: 1},
	}
	handler := NewCartHandler(cart.NewService(api))

	recorder := httptest.NewRecorder()
	handler.Get(recorder, httptest.NewRequest("GET", "/api/v1/cart/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response cartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response.Items, 1)
	assert.Equal(t, 45000.0, response.Summary.TotalAmount)
}

func TestCartGet_AuthFailure(t *testing.T) {
	api := &cartAPIMock{itemsErr: &rest.Error{Kind: rest.KindAuth, StatusCode: http.StatusUnauthorized}}
	handler := NewCartHandler(cart.NewService(api))

	recorder := httptest.NewRecorder()
	handler.Get(recorder, httptest.NewRequest("GET", "/api/v1/cart/", nil))

	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "re_login", response.Code)
}

func TestCartAddItem_InvalidBody(t *testing.T) {
	handler := NewCartHandler(cart.NewService(&cartAPIMock{}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader("not json"))
	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartAddItem_QuantityBounds(t *testing.T) {
	handler := NewCartHandler(cart.NewService(&cartAPIMock{}))

	for _, body := range []string{
		`{"product_id":1,"quantity":0}`,
		`{"product_id":1,"quantity":100}`,
		`{"product_id":0,"quantity":1}`,
	} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(body))
		handler.AddItem(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "body %s", body)
	}
}

func TestCartAddItem_Success(t *testing.T) {
	api := &cartAPIMock{
		items:   []domain.CartItem{{ID: 1, ProductID: 10, Quantity: 2}},
		summary: domain.CartSummary{TotalItems: 2, ItemsCount: 1},
	}
	handler := NewCartHandler(cart.NewService(api))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":10,"quantity":2}`))
	handler.AddItem(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response cartResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, 2, response.Summary.TotalItems)
}

func TestCartRemoveItem_InvalidID(t *testing.T) {
	handler := NewCartHandler(cart.NewService(&cartAPIMock{}))

	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("DELETE", "/api/v1/cart/items/abc", nil), "item_id", "abc")
	handler.RemoveItem(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartRemoveItem_NotFound(t *testing.T) {
	api := &cartAPIMock{removeErr: &rest.Error{Kind: rest.KindNotFound, StatusCode: http.StatusNotFound, Detail: "item not found"}}
	handler := NewCartHandler(cart.NewService(api))

	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("DELETE", "/api/v1/cart/items/5", nil), "item_id", "5")
	handler.RemoveItem(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "item not found", response.Error)
}

func TestCartRemoveItem_Success(t *testing.T) {
	api := &cartAPIMock{
		items:   []domain.CartItem{},
		summary: domain.CartSummary{},
	}
	handler := NewCartHandler(cart.NewService(api))

	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("DELETE", "/api/v1/cart/items/5", nil), "item_id", "5")
	handler.RemoveItem(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	// Items must serialize as an array even when the cart is now empty.
	body := recorder.Body.String()
	assert.Contains(t, body, `"items":[]`)
}
