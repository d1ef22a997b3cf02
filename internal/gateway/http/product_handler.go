package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/rest"
)

type ProductHandler struct {
	products *rest.ProductClient
}

func NewProductHandler(products *rest.ProductClient) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.products.List(r.Context())
	if err != nil {
		respondComponentError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		respondComponentError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}
