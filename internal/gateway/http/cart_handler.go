package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/domain"
)

type CartHandler struct {
	cart *cart.Service
}

func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{cart: svc}
}

type addItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type cartResponseDTO struct {
	Items   []domain.CartItem  `json:"items"`
	Summary domain.CartSummary `json:"summary"`
}

func toCartDTO(snap domain.CartSnapshot) cartResponseDTO {
	items := snap.Items
	if items == nil {
		items = make([]domain.CartItem, 0)
	}
	return cartResponseDTO{Items: items, Summary: snap.Summary}
}

// Get re-fetches the cart on every call; the snapshot is view-scoped, never
// a cache across activations.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.cart.Fetch(r.Context())
	if err != nil {
		respondComponentError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartDTO(snap))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	if err := h.cart.Add(r.Context(), req.ProductID, req.Quantity); err != nil {
		respondComponentError(w, err)
		return
	}

	snap, _ := h.cart.Snapshot()
	respondJSON(w, http.StatusCreated, toCartDTO(snap))
}

// RemoveItem deletes one line. The frontend confirms with the user before
// calling; this endpoint is the destructive action itself.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id must be a positive integer")
		return
	}

	if err := h.cart.Remove(r.Context(), itemID); err != nil {
		respondComponentError(w, err)
		return
	}

	snap, _ := h.cart.Snapshot()
	respondJSON(w, http.StatusOK, toCartDTO(snap))
}
