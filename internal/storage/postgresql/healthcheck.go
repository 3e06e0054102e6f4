package postgresql

import (
	"context"
	"errors"

	"github.com/ledgerkeep/walletd/internal/service/healthcheck"
)

var _ healthcheck.HealthRepository = (*HealthRepo)(nil)

type HealthRepo struct {
	baseRepo
}

// Ping checks the connection pool, retrying transient connection
// errors before reporting failure.
func (r *HealthRepo) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("connection pool is not initialized")
	}

	return r.retrier.Do(ctx, func(ctx context.Context) error {
		return r.db.Ping(ctx)
	})
}
