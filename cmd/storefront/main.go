package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/config"
	"github.com/fjod/go_storefront/internal/domain"
	gw "github.com/fjod/go_storefront/internal/gateway/http"
	"github.com/fjod/go_storefront/internal/orders"
	"github.com/fjod/go_storefront/internal/payment"
	"github.com/fjod/go_storefront/internal/rest"
	"github.com/fjod/go_storefront/internal/session"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store := session.NewStore()

	base := rest.NewClient(store)
	authClient := rest.NewAuthClient(base, cfg.AuthBaseURL)
	productClient := rest.NewProductClient(base, cfg.ProductBaseURL)
	cartClient := rest.NewCartClient(base, cfg.CartBaseURL)
	orderClient := rest.NewOrderClient(base, cfg.OrderBaseURL)

	cartSvc := cart.NewService(cartClient)
	submitter := checkout.NewSubmitter(orderClient, cartSvc, store)
	orderManager := orders.NewManager(orderClient, store)

	paymentCfg := payment.Config{
		StepDelay:     cfg.PaymentStepDelay,
		SubmitDelay:   cfg.PaymentSubmitDelay,
		RedirectDelay: cfg.PaymentRedirectDelay,
	}

	router := gw.NewRouter(gw.Handlers{
		Auth:     gw.NewAuthHandler(authClient, store),
		Products: gw.NewProductHandler(productClient),
		Cart:     gw.NewCartHandler(cartSvc),
		Checkout: gw.NewCheckoutHandler(submitter),
		Payment: gw.NewPaymentHandler(func(l payment.Listener) *payment.Orchestrator {
			return payment.NewOrchestrator(orderClient, store, l, paymentCfg)
		}),
		Orders: gw.NewOrdersHandler(orderManager),
	})

	// Every surface sees the same session; one 401 anywhere logs the whole
	// storefront out.
	sessionCh, cancelSub := store.Subscribe()
	defer cancelSub()
	go func() {
		for state := range sessionCh {
			log.Info().Bool("authenticated", state.Authenticated()).Msg("session state changed")
		}
	}()

	cartSvc.OnChange(func(snap domain.CartSnapshot) {
		log.Info().Int("items", snap.Summary.ItemsCount).
			Float64("total_amount", snap.Summary.TotalAmount).
			Msg("cart contents changed")
	})

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("storefront shell starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
