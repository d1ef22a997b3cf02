package http

import (
	"encoding/json"
	"net/http"

	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
)

type CheckoutHandler struct {
	submitter *checkout.Submitter
}

func NewCheckoutHandler(submitter *checkout.Submitter) *CheckoutHandler {
	return &CheckoutHandler{submitter: submitter}
}

type checkoutRequestDTO struct {
	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"payment_method"`
	UseSameAddress  bool   `json:"use_same_address"`
}

// Submit validates the buyer's data and converts the cart into an order.
// Validation problems come back per-field as 422; an empty cart is rejected
// here without touching the order service.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.submitter.Submit(r.Context(), domain.CheckoutRequest{
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Phone:           req.Phone,
		Email:           req.Email,
		Notes:           req.Notes,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		UseSameAddress:  req.UseSameAddress,
	})
	if err != nil {
		respondComponentError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}
