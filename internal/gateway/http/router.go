package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups the shell's route handlers for wiring.
type Handlers struct {
	Auth     *AuthHandler
	Products *ProductHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Payment  *PaymentHandler
	Orders   *OrdersHandler
}

// NewRouter builds the storefront shell router.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(RequestIDMiddleware)
	r.Use(LogMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Get("/session", h.Auth.Session)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Get("/{product_id}", h.Products.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Post("/items", h.Cart.AddItem)
			r.Delete("/items/{item_id}", h.Cart.RemoveItem)
		})

		r.Post("/checkout", h.Checkout.Submit)

		r.Route("/payment", func(r chi.Router) {
			r.Get("/steps", h.Payment.Steps)
			r.Post("/instant", h.Payment.Start)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.Orders.List)
			r.Get("/{order_id}", h.Orders.Get)
			r.Put("/{order_id}/cancel", h.Orders.Cancel)
		})
	})

	return r
}
