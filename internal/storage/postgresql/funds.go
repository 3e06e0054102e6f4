package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ledgerkeep/walletd/internal/model"
	"github.com/ledgerkeep/walletd/internal/utils/retry"
)

var _ model.FundsRepository = (*FundsRepo)(nil)

type FundsRepo struct {
	baseRepo
}

func (r *FundsRepo) GetBalance(
	ctx context.Context,
	userID int,
) (model.Balance, error) {
	q := `
		SELECT (
			COALESCE((
				SELECT SUM(d.amount) FROM deposits d
				WHERE d.user_id = $1 AND d.status = 'CONFIRMED'
			), 0)
			-
			COALESCE((
				SELECT SUM(w.amount) FROM withdrawals w
				WHERE w.user_id = $1
			), 0)
		)
		::bigint AS balance_units
	`
	row := r.db.QueryRow(ctx, q, userID)

	var balance int64
	if err := row.Scan(&balance); err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return model.Balance(balance), nil
}

func (r *FundsRepo) GetWithdrawnTotal(
	ctx context.Context,
	userID int,
) (model.Amount, error) {
	q := `
		SELECT COALESCE(SUM(amount), 0)::bigint as total_withdrawn_units
		FROM withdrawals
		WHERE user_id = $1;
	`

	row := r.db.QueryRow(ctx, q, userID)

	var withdrawn int64
	if err := row.Scan(&withdrawn); err != nil {
		return 0, fmt.Errorf("failed to get withdrawn total: %w", err)
	}

	return model.Amount(withdrawn), nil
}

func (r *FundsRepo) RecordWithdrawal(
	ctx context.Context,
	userID int,
	destination string,
	amount model.Amount,
) error {
	txRetrier := retry.New(func(err error) bool {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "40001", "40P01":
				return true
			}
		}
		return false
	})

	op := func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
			IsoLevel: pgx.Serializable,
		})
		if err != nil {
			return fmt.Errorf("failed to start tx: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		q := `
			WITH bal AS (
			SELECT (
				COALESCE((
					SELECT SUM(d.amount) FROM deposits d
					WHERE d.user_id = $1 AND d.status = 'CONFIRMED'
				), 0)
				-
				COALESCE((
					SELECT SUM(w.amount) FROM withdrawals w
					WHERE w.user_id = $1
				), 0)
			)
			::bigint AS balance
			),
			ins AS (
			INSERT INTO withdrawals (user_id, destination, amount)
			SELECT
				$1,
				$2,
				$3::bigint
			FROM bal
			WHERE bal.balance >= $3::bigint
			RETURNING id
			)
			SELECT EXISTS(SELECT 1 FROM ins) AS ok;
		`

		var ok bool
		if err := tx.QueryRow(
			ctx,
			q,
			userID,
			destination,
			int64(amount),
		).Scan(&ok); err != nil {
			return fmt.Errorf("withdraw exec: %w", err)
		}

		if !ok {
			return model.ErrInsufficientFunds
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit tx: %w", err)
		}
		return nil
	}

	if err := txRetrier.Do(ctx, op); err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to record withdrawal: %w", err)
	}
	return nil
}
