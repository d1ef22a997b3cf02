package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/orders"
	"github.com/fjod/go_storefront/internal/payment"
	"github.com/fjod/go_storefront/internal/rest"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondComponentError maps workflow failures onto the shell's HTTP
// surface. Auth rejections come back as 401 with a re_login code; the
// frontend must drop to the login view on that code.
func respondComponentError(w http.ResponseWriter, err error) {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "validation failed",
			Code:   "validation",
			Fields: fieldErrs,
		})
		return
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "El carrito está vacío")
		return
	case errors.Is(err, orders.ErrNotCancellable):
		respondError(w, http.StatusConflict, "not_cancellable", "El pedido no puede ser cancelado en su estado actual")
		return
	case errors.Is(err, payment.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "payment_in_progress", "payment flow already running")
		return
	}

	var restErr *rest.Error
	if errors.As(err, &restErr) {
		switch restErr.Kind {
		case rest.KindAuth:
			respondError(w, http.StatusUnauthorized, "re_login", "Sesión expirada. Por favor, inicia sesión nuevamente.")
		case rest.KindNotFound:
			respondError(w, http.StatusNotFound, "not_found", detailOr(restErr, "Pedido no encontrado"))
		case rest.KindConflict:
			respondError(w, http.StatusBadRequest, "rejected", detailOr(restErr, "request rejected"))
		default:
			respondError(w, http.StatusBadGateway, "upstream_error", "Error del servicio. Intenta de nuevo.")
		}
		return
	}

	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func detailOr(err *rest.Error, fallback string) string {
	if err.Detail != "" {
		return err.Detail
	}
	return fallback
}
