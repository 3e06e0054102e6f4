package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ledgerkeep/walletd/internal/model"
)

var _ model.DepositsRepository = (*DepositsRepo)(nil)

type DepositsRepo struct {
	baseRepo
}

func (r *DepositsRepo) GetByUserID(
	ctx context.Context,
	userID int,
) ([]model.Deposit, error) {
	q := `
		SELECT id, reference, status, amount, created_at
		FROM deposits
		WHERE user_id = $1
		ORDER BY id DESC
	`

	var (
		depositID int
		reference string
		status    model.DepositStatus
		amount    int64
		createdAt time.Time
	)
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("deposits query error: %w", err)
	}
	defer rows.Close()

	var deposits []model.Deposit
	for rows.Next() {
		if err := rows.Scan(
			&depositID,
			&reference,
			&status,
			&amount,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		deposit := model.Deposit{
			ID:        depositID,
			UserID:    userID,
			Reference: reference,
			Status:    status,
			Amount:    model.Amount(amount),
			CreatedAt: createdAt,
		}
		deposits = append(deposits, deposit)
	}

	return deposits, nil
}

func (r *DepositsRepo) AddDeposit(
	ctx context.Context,
	deposit *model.Deposit,
) error {
	q := `
		INSERT INTO deposits (user_id, reference, status, amount)
		VALUES (@userID, @reference, @status, @amount)
	`

	args := pgx.NamedArgs{
		"userID":    deposit.UserID,
		"reference": deposit.Reference,
		"status":    deposit.Status,
		"amount":    int64(deposit.Amount),
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			var existingUserID int
			row := r.db.QueryRow(
				ctx,
				`SELECT user_id FROM deposits WHERE reference = $1`,
				deposit.Reference,
			)
			if scanErr := row.Scan(&existingUserID); scanErr != nil {
				return fmt.Errorf(
					"%w: deposit exists; failed to get owner: %v",
					model.ErrDepositAlreadyExist,
					scanErr,
				)
			}
			if existingUserID != deposit.UserID {
				return model.ErrDepositAlreadyAddedByOtherUser
			}
			return model.ErrDepositAlreadyExist
		}

		return fmt.Errorf("failed to create deposit: %w", err)
	}

	return nil
}
