// Package cart aggregates the user's cart: line items plus the
// server-computed summary, fetched together and never patched locally.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/fjod/go_storefront/internal/domain"
)

// API is the slice of the cart service the aggregator consumes.
type API interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Summary(ctx context.Context) (domain.CartSummary, error)
	Add(ctx context.Context, productID int64, quantity int) (domain.CartItem, error)
	Remove(ctx context.Context, itemID int64) error
}

type Service struct {
	api API

	mu        sync.Mutex
	snapshot  *domain.CartSnapshot
	listeners []func(domain.CartSnapshot)
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// OnChange registers a listener invoked after every successful mutation,
// once the fresh snapshot has been fetched. Registration is not
// deregisterable; listeners live as long as the shell.
func (s *Service) OnChange(fn func(domain.CartSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Fetch retrieves items and summary concurrently. Either both land or the
// whole fetch fails; a partial cart is never surfaced, so the displayed
// summary can't drift from the lines it describes.
func (s *Service) Fetch(ctx context.Context) (domain.CartSnapshot, error) {
	var (
		items   []domain.CartItem
		summary domain.CartSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.api.Items(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.api.Summary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("fetch cart: %w", err)
	}

	snap := domain.CartSnapshot{Items: items, Summary: summary}

	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()

	return snap, nil
}

// Snapshot returns the last fetched cart, if any. It is a display cache for
// the current view only; callers re-fetch on every view activation.
func (s *Service) Snapshot() (domain.CartSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return domain.CartSnapshot{}, false
	}
	return *s.snapshot, true
}

// Add puts a product in the cart, then re-fetches and notifies listeners.
func (s *Service) Add(ctx context.Context, productID int64, quantity int) error {
	if _, err := s.api.Add(ctx, productID, quantity); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// Remove deletes one line item. On failure the held snapshot is left
// untouched; on success the cart is re-fetched before anyone sees it, so no
// locally-patched state ever reaches a listener.
func (s *Service) Remove(ctx context.Context, itemID int64) error {
	if err := s.api.Remove(ctx, itemID); err != nil {
		log.Warn().Err(err).Int64("item_id", itemID).Msg("cart: remove failed")
		return err
	}
	return s.refresh(ctx)
}

func (s *Service) refresh(ctx context.Context) error {
	snap, err := s.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("refresh after cart mutation: %w", err)
	}

	s.mu.Lock()
	listeners := make([]func(domain.CartSnapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	log.Debug().Int("items", len(snap.Items)).Msg("cart: snapshot refreshed")
	return nil
}
