// Package orders manages the order lifecycle from the storefront's side:
// paginated listing with a status filter, detail, and cancellation.
package orders

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/rest"
)

// ErrNotCancellable is the local eligibility rejection; no network call is
// made. When the listed status was stale the server's own 400 detail is
// surfaced instead.
var ErrNotCancellable = errors.New("order cannot be cancelled in its current status")

type API interface {
	List(ctx context.Context, page, perPage int, filter domain.OrderStatus) (domain.OrderPage, error)
	Get(ctx context.Context, id int64) (domain.Order, error)
	Cancel(ctx context.Context, id int64) (domain.Order, error)
}

type SessionClearer interface {
	Clear()
}

const defaultPerPage = 10

// Manager holds the listing position (page, filter) and the currently open
// detail. Pages are request parameters, not a cache: every List call hits
// the service.
type Manager struct {
	api     API
	session SessionClearer

	mu         sync.Mutex
	page       int
	perPage    int
	totalPages int
	filter     domain.OrderStatus
	listed     map[int64]domain.OrderStatus
	detail     *domain.Order
}

func NewManager(api API, session SessionClearer) *Manager {
	return &Manager{
		api:     api,
		session: session,
		page:    1,
		perPage: defaultPerPage,
		listed:  make(map[int64]domain.OrderStatus),
	}
}

func (m *Manager) Page() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.page
}

func (m *Manager) TotalPages() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalPages
}

func (m *Manager) Filter() domain.OrderStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

func (m *Manager) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.page = page
}

// SetFilter switches the status filter. Changing it invalidates the current
// page position, so the next fetch starts from page 1.
func (m *Manager) SetFilter(filter domain.OrderStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.filter == filter {
		return
	}
	m.filter = filter
	m.page = 1
}

// List fetches the current page with the current filter and records the
// page count plus each row's status for the cancel eligibility check.
func (m *Manager) List(ctx context.Context) (domain.OrderPage, error) {
	m.mu.Lock()
	page, perPage, filter := m.page, m.perPage, m.filter
	m.mu.Unlock()

	result, err := m.api.List(ctx, page, perPage, filter)
	if err != nil {
		return domain.OrderPage{}, m.checked(err)
	}

	m.mu.Lock()
	m.totalPages = result.TotalPages
	for _, o := range result.Orders {
		m.listed[o.ID] = o.Status
	}
	m.mu.Unlock()

	return result, nil
}

// Get fetches the full order record and keeps it as the open detail panel.
func (m *Manager) Get(ctx context.Context, id int64) (domain.Order, error) {
	order, err := m.api.Get(ctx, id)
	if err != nil {
		return domain.Order{}, m.checked(err)
	}

	m.mu.Lock()
	m.detail = &order
	m.listed[order.ID] = order.Status
	m.mu.Unlock()

	return order, nil
}

// Detail returns the open detail panel, if any.
func (m *Manager) Detail() (domain.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.detail == nil {
		return domain.Order{}, false
	}
	return *m.detail, true
}

// Cancel requests cancellation of an eligible order. The predicate runs
// locally first against the last seen status; the service independently
// enforces the same rule and its rejection detail is authoritative. On
// success both the list and, if open on this order, the detail are
// refreshed.
func (m *Manager) Cancel(ctx context.Context, id int64) (domain.Order, error) {
	m.mu.Lock()
	status, seen := m.listed[id]
	m.mu.Unlock()

	if seen && !status.Cancellable() {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrNotCancellable, status)
	}

	cancelled, err := m.api.Cancel(ctx, id)
	if err != nil {
		return domain.Order{}, m.checked(err)
	}
	log.Info().Int64("order_id", id).Msg("orders: order cancelled")

	m.mu.Lock()
	m.listed[id] = cancelled.Status
	detailOpen := m.detail != nil && m.detail.ID == id
	m.mu.Unlock()

	if _, err := m.List(ctx); err != nil {
		return cancelled, fmt.Errorf("refresh list after cancel: %w", err)
	}
	if detailOpen {
		if _, err := m.Get(ctx, id); err != nil {
			return cancelled, fmt.Errorf("refresh detail after cancel: %w", err)
		}
	}
	return cancelled, nil
}

// checked applies the cross-cutting auth contract: any rejected token clears
// the session so the shell forces re-authentication.
func (m *Manager) checked(err error) error {
	if rest.IsAuth(err) {
		log.Warn().Msg("orders: token rejected, clearing session")
		m.session.Clear()
	}
	return err
}
