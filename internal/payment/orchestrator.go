// Package payment drives the instant ("quick pay") checkout: a fixed
// progress animation followed by a single order-creation call with
// synthesized checkout data.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/rest"
)

type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateError      State = "error"
)

func (s State) String() string {
	return string(s)
}

// ErrIllegalTransition guards the single-flow contract: a run may start from
// idle or error (retry), never from processing or success. A fresh idle
// orchestrator means a fresh quick-pay surface.
var ErrIllegalTransition = errors.New("illegal payment state transition")

// Receipt is what the caller gets to display after a successful run.
type Receipt struct {
	OrderID           int64      `json:"order_id"`
	Amount            float64    `json:"amount"`
	Status            string     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

// Listener receives the orchestrator's notifications. The shell subscribes
// here instead of handing in ad hoc callbacks.
type Listener interface {
	StepAdvanced(step Step)
	Succeeded(r Receipt)
	Failed(message string)
	// NavigateToOrders fires after the post-success display delay; the
	// enclosing surface should switch to the orders view.
	NavigateToOrders(r Receipt)
}

type OrderAPI interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResult, error)
}

// Session resolves the email used on the synthesized checkout and is the
// clearing point when the token turns out to be rejected mid-flow.
type Session interface {
	Email() string
	Clear()
}

// Config carries the fixed delays. Zero values fall back to the defaults.
type Config struct {
	StepDelay     time.Duration
	SubmitDelay   time.Duration
	RedirectDelay time.Duration
}

const (
	defaultStepDelay     = 300 * time.Millisecond
	defaultSubmitDelay   = 1500 * time.Millisecond
	defaultRedirectDelay = 2 * time.Second
)

func (c Config) withDefaults() Config {
	if c.StepDelay == 0 {
		c.StepDelay = defaultStepDelay
	}
	if c.SubmitDelay == 0 {
		c.SubmitDelay = defaultSubmitDelay
	}
	if c.RedirectDelay == 0 {
		c.RedirectDelay = defaultRedirectDelay
	}
	return c
}

// Quick pay does not collect checkout data; it submits fixed placeholder
// contact fields and only the email comes from the session.
// TODO: confirm with product whether quick pay should reuse the customer's
// saved contact data instead of these placeholders.
const (
	placeholderAddress = "Dirección por defecto - Calle 123 #45-67, Bogotá, Colombia"
	placeholderPhone   = "3001234567"
	fallbackEmail      = "usuario@ejemplo.com"
	quickPayNotes      = "Pago rápido procesado automáticamente"
)

// Orchestrator is a strictly sequential, single-flow state machine:
// idle → processing → {success | error}, with error → processing as the only
// re-entry (retry). No two runs overlap.
type Orchestrator struct {
	orders   OrderAPI
	session  Session
	listener Listener
	schedule []Step
	cfg      Config
	sleep    func(ctx context.Context, d time.Duration) error

	mu       sync.Mutex
	state    State
	progress int
	failure  string
	receipt  *Receipt
}

func NewOrchestrator(orders OrderAPI, session Session, listener Listener, cfg Config) *Orchestrator {
	return &Orchestrator{
		orders:   orders,
		session:  session,
		listener: listener,
		schedule: DefaultSchedule(),
		cfg:      cfg.withDefaults(),
		sleep:    sleepCtx,
		state:    StateIdle,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Progress is the last published step progress, 0–100.
func (o *Orchestrator) Progress() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.progress
}

// Failure is the surfaced server detail after an error run.
func (o *Orchestrator) Failure() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.failure
}

func (o *Orchestrator) Receipt() (Receipt, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.receipt == nil {
		return Receipt{}, false
	}
	return *o.receipt, true
}

func (o *Orchestrator) Schedule() []Step {
	steps := make([]Step, len(o.schedule))
	copy(steps, o.schedule)
	return steps
}

// Start runs one full quick-pay flow: the step schedule with its fixed
// inter-step delay, the submit delay, then exactly one order-creation call.
// A retry after an error repeats everything from the first step. There is no
// rollback on failure: the order service either creates the order or leaves
// the cart untouched.
func (o *Orchestrator) Start(ctx context.Context) error {
	if err := o.enterProcessing(); err != nil {
		return err
	}

	for _, step := range o.schedule {
		o.setProgress(step.Progress)
		o.listener.StepAdvanced(step)
		if err := o.sleep(ctx, o.cfg.StepDelay); err != nil {
			o.fail(err.Error())
			return err
		}
	}

	if err := o.sleep(ctx, o.cfg.SubmitDelay); err != nil {
		o.fail(err.Error())
		return err
	}

	result, err := o.orders.Checkout(ctx, o.defaultRequest())
	if err != nil {
		if rest.IsAuth(err) {
			o.session.Clear()
		}
		detail := rest.Detail(err)
		log.Warn().Str("detail", detail).Msg("payment: quick pay failed")
		o.fail(detail)
		o.listener.Failed(detail)
		return fmt.Errorf("quick pay: %w", err)
	}

	receipt := Receipt{
		OrderID:           result.OrderID,
		Amount:            result.TotalAmount,
		Status:            result.Status,
		EstimatedDelivery: result.EstimatedDelivery,
	}
	o.succeed(receipt)
	o.listener.Succeeded(receipt)
	log.Info().Int64("order_id", receipt.OrderID).Float64("amount", receipt.Amount).
		Msg("payment: quick pay completed")

	// Hold the success view before moving the caller on.
	if err := o.sleep(ctx, o.cfg.RedirectDelay); err != nil {
		return err
	}
	o.listener.NavigateToOrders(receipt)
	return nil
}

func (o *Orchestrator) defaultRequest() domain.CheckoutRequest {
	email := o.session.Email()
	if email == "" {
		email = fallbackEmail
	}
	return domain.CheckoutRequest{
		ShippingAddress: placeholderAddress,
		BillingAddress:  placeholderAddress,
		Phone:           placeholderPhone,
		Email:           email,
		Notes:           quickPayNotes,
		PaymentMethod:   domain.PaymentInstant,
	}
}

func (o *Orchestrator) enterProcessing() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateIdle && o.state != StateError {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.state, StateProcessing)
	}
	o.state = StateProcessing
	o.progress = 0
	o.failure = ""
	return nil
}

func (o *Orchestrator) setProgress(p int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress = p
}

func (o *Orchestrator) fail(detail string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateError
	o.failure = detail
}

func (o *Orchestrator) succeed(r Receipt) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateSuccess
	o.receipt = &r
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
