package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/orders"
)

type OrdersHandler struct {
	manager *orders.Manager
}

func NewOrdersHandler(manager *orders.Manager) *OrdersHandler {
	return &OrdersHandler{manager: manager}
}

var knownStatuses = map[domain.OrderStatus]bool{
	domain.StatusPending:    true,
	domain.StatusConfirmed:  true,
	domain.StatusProcessing: true,
	domain.StatusShipped:    true,
	domain.StatusDelivered:  true,
	domain.StatusCancelled:  true,
}

// List serves the paginated order listing. A status query different from
// the active filter resets the position to page 1 before fetching.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	if statusParam := r.URL.Query().Has("status"); statusParam {
		filter := domain.OrderStatus(r.URL.Query().Get("status"))
		if filter != "" && !knownStatuses[filter] {
			respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
			return
		}
		h.manager.SetFilter(filter)
	}

	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page < 1 {
			respondError(w, http.StatusBadRequest, "invalid_page", "page must be a positive integer")
			return
		}
		h.manager.SetPage(page)
	}

	result, err := h.manager.List(r.Context())
	if err != nil {
		respondComponentError(w, err)
		return
	}
	if result.Orders == nil {
		result.Orders = make([]domain.OrderSummary, 0)
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	order, err := h.manager.Get(r.Context(), id)
	if err != nil {
		respondComponentError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Cancel requests cancellation. The frontend confirms with the user first;
// eligibility is checked locally and authoritatively by the order service.
func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	cancelled, err := h.manager.Cancel(r.Context(), id)
	if err != nil {
		respondComponentError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cancelled)
}
