package postgresql

import (
	"context"
	"fmt"

	"github.com/ledgerkeep/walletd/internal/model"
	collector "github.com/ledgerkeep/walletd/internal/service/deposit-collector"
)

var _ collector.CollectorRepository = (*CollectorRepo)(nil)

type CollectorRepo struct {
	baseRepo
}

// ConfirmDeposit records the processor-confirmed amount and makes the
// deposit count towards the wallet balance.
func (r *CollectorRepo) ConfirmDeposit(
	ctx context.Context,
	id int,
	amount model.Amount,
) error {
	q := `
		UPDATE deposits
		SET amount = $2, status = $3
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, q, id, int64(amount), model.DepositConfirmed)
	if err != nil {
		return fmt.Errorf("confirm deposit %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("confirm deposit %d: no such deposit", id)
	}

	return nil
}

func (r *CollectorRepo) RejectDeposit(ctx context.Context, id int) error {
	q := `
		UPDATE deposits
		SET status = $2
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, q, id, model.DepositRejected); err != nil {
		return fmt.Errorf("reject deposit %d: %w", id, err)
	}

	return nil
}

// GetPendingBatch claims up to batchSize pending deposits for polling.
// The claim is a single statement: rows another poller already locked are
// skipped, and stamping last_polled_at pushes claimed rows to the back of
// the queue so a stuck deposit cannot starve the rest.
func (r *CollectorRepo) GetPendingBatch(
	ctx context.Context,
	batchSize int,
) ([]model.Deposit, error) {
	q := `
		UPDATE deposits d
		SET last_polled_at = NOW()
		WHERE d.id IN (
			SELECT id FROM deposits
			WHERE status = 'PENDING'
			ORDER BY last_polled_at NULLS FIRST, id
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING d.id, d.user_id, d.reference, d.status, d.amount, d.created_at
	`

	rows, err := r.db.Query(ctx, q, batchSize)
	if err != nil {
		return nil, fmt.Errorf("claim pending deposits: %w", err)
	}
	defer rows.Close()

	var batch []model.Deposit
	for rows.Next() {
		var (
			d      model.Deposit
			amount int64
		)
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Reference,
			&d.Status,
			&amount,
			&d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan claimed deposit: %w", err)
		}
		d.Amount = model.Amount(amount)

		batch = append(batch, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("claim pending deposits: %w", err)
	}

	return batch, nil
}
