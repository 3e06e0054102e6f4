package healthcheck

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination ./mocks/health_repo.go . HealthRepository
type HealthRepository interface {
	Ping(ctx context.Context) error
}

// HealthService answers liveness checks. The wallet service is healthy
// when its storage answers a ping; there is no other state to check.
type HealthService struct {
	repo HealthRepository
}

func NewHealthcheckService(repo HealthRepository) *HealthService {
	return &HealthService{repo: repo}
}

func (h *HealthService) Check(ctx context.Context) error {
	if err := h.repo.Ping(ctx); err != nil {
		return fmt.Errorf("storage unreachable: %w", err)
	}

	return nil
}
