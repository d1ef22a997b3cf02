// Package checkout validates the buyer's data and converts the current cart
// into an order.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/rest"
)

// ErrEmptyCart rejects a submission before any network call happens. An
// empty cart is a precondition, not a server fault.
var ErrEmptyCart = errors.New("cart is empty, nothing to check out")

type OrderAPI interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResult, error)
}

// CartSource exposes the last fetched cart snapshot.
type CartSource interface {
	Snapshot() (domain.CartSnapshot, bool)
}

// SessionClearer is the single recovery hook for rejected tokens.
type SessionClearer interface {
	Clear()
}

type Submitter struct {
	orders  OrderAPI
	cart    CartSource
	session SessionClearer
}

func NewSubmitter(orders OrderAPI, cart CartSource, session SessionClearer) *Submitter {
	return &Submitter{orders: orders, cart: cart, session: session}
}

// Submit validates the request, checks the cart precondition locally and
// submits the checkout. On an auth rejection the session is cleared so the
// shell forces a re-login; any other server failure carries the service's
// detail through unchanged.
func (s *Submitter) Submit(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResult, error) {
	req.Normalize()

	if fieldErrs := req.Validate(); fieldErrs != nil {
		return domain.CheckoutResult{}, fieldErrs
	}

	snap, ok := s.cart.Snapshot()
	if !ok || snap.Empty() {
		return domain.CheckoutResult{}, ErrEmptyCart
	}

	result, err := s.orders.Checkout(ctx, req)
	if err != nil {
		if rest.IsAuth(err) {
			log.Warn().Msg("checkout: token rejected, clearing session")
			s.session.Clear()
		}
		return domain.CheckoutResult{}, fmt.Errorf("submit checkout: %w", err)
	}

	log.Info().Int64("order_id", result.OrderID).
		Float64("total_amount", result.TotalAmount).
		Msg("checkout: order created")
	return result, nil
}
