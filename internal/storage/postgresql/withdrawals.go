package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerkeep/walletd/internal/model"
)

var _ model.WithdrawalsRepository = (*WithdrawalsRepo)(nil)

type WithdrawalsRepo struct {
	baseRepo
}

type withdrawalRow struct {
	ID          int
	Destination string
	Amount      int64
	ProcessedAt time.Time
}

// GetByUserID returns the wallet's withdrawal history, newest first.
func (r *WithdrawalsRepo) GetByUserID(
	ctx context.Context,
	userID int,
) ([]model.Withdrawal, error) {
	q := `
		SELECT id, destination, amount, processed_at
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY processed_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("select withdrawals: %w", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByPos[withdrawalRow])
	if err != nil {
		return nil, fmt.Errorf("scan withdrawals: %w", err)
	}

	withdrawals := make([]model.Withdrawal, 0, len(collected))
	for _, row := range collected {
		withdrawals = append(withdrawals, model.Withdrawal{
			ID:          row.ID,
			UserID:      userID,
			Destination: row.Destination,
			Amount:      model.Amount(row.Amount),
			ProcessedAt: row.ProcessedAt,
		})
	}

	return withdrawals, nil
}
