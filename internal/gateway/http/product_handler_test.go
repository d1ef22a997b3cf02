package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/rest"
	"github.com/fjod/go_storefront/internal/session"
)

func newProductHandler(t *testing.T, backend http.HandlerFunc) *ProductHandler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := rest.NewClientWithHTTP(session.NewStore(), &http.Client{})
	return NewProductHandler(rest.NewProductClient(client, srv.URL))
}

func TestProductList_Success(t *testing.T) {
	handler := newProductHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Café de Colombia 500g","unit_price":28000,"stock":12}]`))
	})

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest("GET", "/api/v1/products", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var list []domain.Product
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Café de Colombia 500g", list[0].Name)
}

func TestProductGet_InvalidID(t *testing.T) {
	handler := newProductHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called for an invalid id")
	})

	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("GET", "/api/v1/products/abc", nil), "product_id", "abc")
	handler.Get(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestProductGet_NotFound(t *testing.T) {
	handler := newProductHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Product not found"}`))
	})

	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("GET", "/api/v1/products/99", nil), "product_id", "99")
	handler.Get(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Product not found", response.Error)
}

func TestProductList_BackendDown(t *testing.T) {
	handler := newProductHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest("GET", "/api/v1/products", nil))

	require.Equal(t, http.StatusBadGateway, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "upstream_error", response.Code)
}
