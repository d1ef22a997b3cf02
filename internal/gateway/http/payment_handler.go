package http

import (
	"net/http"

	"github.com/fjod/go_storefront/internal/payment"
)

// OrchestratorFactory builds a fresh quick-pay flow for one surface. Each
// POST gets its own orchestrator, which is how the idle state becomes
// reachable again after success.
type OrchestratorFactory func(l payment.Listener) *payment.Orchestrator

type PaymentHandler struct {
	factory OrchestratorFactory
}

func NewPaymentHandler(factory OrchestratorFactory) *PaymentHandler {
	return &PaymentHandler{factory: factory}
}

type paymentOutcomeDTO struct {
	State      string           `json:"state"`
	Steps      []payment.Step   `json:"steps"`
	Receipt    *payment.Receipt `json:"receipt,omitempty"`
	Error      string           `json:"error,omitempty"`
	RedirectTo string           `json:"redirect_to,omitempty"`
}

// flowRecorder collects the orchestrator's notifications so the outcome can
// be reported in one response.
type flowRecorder struct {
	steps      []payment.Step
	receipt    *payment.Receipt
	failure    string
	redirectTo string
}

func (r *flowRecorder) StepAdvanced(step payment.Step) {
	r.steps = append(r.steps, step)
}

func (r *flowRecorder) Succeeded(receipt payment.Receipt) {
	r.receipt = &receipt
}

func (r *flowRecorder) Failed(message string) {
	r.failure = message
}

func (r *flowRecorder) NavigateToOrders(payment.Receipt) {
	r.redirectTo = "/orders"
}

// Steps exposes the fixed progress schedule so the frontend can render the
// step list before starting.
func (h *PaymentHandler) Steps(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, payment.DefaultSchedule())
}

// Start runs one full quick-pay flow and reports the outcome. A failed flow
// answers 200 with state "error": the payment was processed to a terminal
// display state, and the frontend decides between retry and cancel.
func (h *PaymentHandler) Start(w http.ResponseWriter, r *http.Request) {
	recorder := &flowRecorder{}
	orchestrator := h.factory(recorder)

	err := orchestrator.Start(r.Context())

	outcome := paymentOutcomeDTO{
		State:      orchestrator.State().String(),
		Steps:      recorder.steps,
		Receipt:    recorder.receipt,
		Error:      recorder.failure,
		RedirectTo: recorder.redirectTo,
	}

	if err != nil && orchestrator.State() != payment.StateError {
		// Startup guard or cancelled context, not a payment outcome.
		respondComponentError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}
