package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

//go:generate mockgen -destination ./mocks/health_mock.go . HealthService
type HealthService interface {
	Check(ctx context.Context) error
}

func NewHealthHandler(svc HealthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Check(r.Context()); err != nil {
			slog.Error("wallet storage health check failed", slog.Any("error", err))
			http.Error(
				w,
				http.StatusText(http.StatusServiceUnavailable),
				http.StatusServiceUnavailable,
			)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}
