package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ledgerkeep/walletd/internal/api/handlers"
	"github.com/ledgerkeep/walletd/internal/api/middleware"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type StorageDeps struct {
	JWTSecret          string
	HealthService      handlers.HealthService
	AuthService        handlers.AuthService
	DepositsService    handlers.DepositsService
	FundsService       handlers.FundsService
	WithdrawalsService handlers.WithdrawalsService
}

type Router struct {
	handler http.Handler
}

func NewRouter(deps StorageDeps) *Router {
	authed := middleware.RequireJWT(deps.JWTSecret)

	routes := []struct {
		pattern string
		handler http.Handler
		wallet  bool
	}{
		{"GET /health", handlers.NewHealthHandler(deps.HealthService), false},
		{"POST /api/user/register", handlers.NewAuthRegisterHandler(deps.AuthService), false},
		{"POST /api/user/login", handlers.NewAuthLoginHandler(deps.AuthService), false},
		{"GET /api/user/deposits", handlers.NewDepositsGetHandler(deps.DepositsService), true},
		{"POST /api/user/deposits", handlers.NewDepositsPostHandler(deps.DepositsService), true},
		{"GET /api/user/balance", handlers.NewBalanceHandler(deps.FundsService), true},
		{"POST /api/user/balance/withdraw", handlers.NewWithdrawHandler(deps.FundsService), true},
		{"GET /api/user/withdrawals", handlers.NewWithdrawalsHandler(deps.WithdrawalsService), true},
	}

	mux := http.NewServeMux()
	for _, rt := range routes {
		h := rt.handler
		if rt.wallet {
			h = authed(h)
		}
		mux.Handle(rt.pattern, h)
	}

	return &Router{
		handler: middleware.Log()(mux),
	}
}

// Run serves the wallet API until ctx is cancelled, then drains in-flight
// requests within shutdownTimeout.
func (r *Router) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
	}

	// ctx is already cancelled, the drain needs its own deadline
	drainCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()

	if err := srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("api shutdown: %w", err)
	}

	slog.Info("api drained and stopped")

	return nil
}
