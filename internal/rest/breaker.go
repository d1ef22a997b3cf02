package rest

import (
	"net/http"
	"sync"

	"github.com/sony/gobreaker/v2"
)

// breakerGroup keeps one circuit breaker per upstream host, so a dead order
// service can't pile up connection attempts while the catalog keeps working.
// Only transport failures count against the breaker: an HTTP error status is
// a delivered answer, not a broken upstream.
type breakerGroup struct {
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*http.Response]
}

func newBreakerGroup() *breakerGroup {
	return &breakerGroup{breakers: make(map[string]*gobreaker.CircuitBreaker[*http.Response])}
}

func (g *breakerGroup) forHost(host string) *gobreaker.CircuitBreaker[*http.Response] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cb, ok := g.breakers[host]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name: host,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	g.breakers[host] = cb
	return cb
}
