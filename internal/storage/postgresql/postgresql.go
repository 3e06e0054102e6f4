package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerkeep/walletd/internal/utils/retry"
)

type baseRepo struct {
	db      *pgxpool.Pool
	retrier *retry.Retrier
}

// Repositories bundles every wallet repository over one shared pool.
type Repositories struct {
	DB *pgxpool.Pool

	Health      *HealthRepo
	Users       *UsersRepo
	Deposits    *DepositsRepo
	Funds       *FundsRepo
	Withdrawals *WithdrawalsRepo
	Collector   *CollectorRepo
}

// transientPgError reports whether err is worth retrying: a dropped
// connection or the server shutting down, not a statement failure.
func transientPgError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code)
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

// NewStorage opens the pool, verifies connectivity and brings the
// schema up to date before handing out repositories.
func NewStorage(ctx context.Context, dbDSN string) (*Repositories, error) {
	db, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	base := baseRepo{
		db:      db,
		retrier: retry.New(transientPgError),
	}

	return &Repositories{
		DB:          db,
		Health:      &HealthRepo{base},
		Users:       &UsersRepo{base},
		Deposits:    &DepositsRepo{base},
		Funds:       &FundsRepo{base},
		Withdrawals: &WithdrawalsRepo{base},
		Collector:   &CollectorRepo{base},
	}, nil
}
