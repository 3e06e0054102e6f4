package model

import (
	"context"
	"time"

	"github.com/ledgerkeep/walletd/internal/utils/luhn"
)

//go:generate mockgen -destination ../service/withdrawals/mocks/withdrawals_repo.go . WithdrawalsRepository
type WithdrawalsRepository interface {
	GetByUserID(ctx context.Context, userID int) ([]Withdrawal, error)
}

type Withdrawal struct {
	ID          int
	UserID      int
	Destination string
	Amount      Amount
	ProcessedAt time.Time
}

func ValidateAmount(amount Amount) bool {
	return amount > 0
}

// ValidateNumber checks a destination account or deposit reference number
// with the Luhn algorithm.
func ValidateNumber(number string) bool {
	return luhn.ValidateNumber(number)
}
