package funds

import (
	"context"
	"fmt"

	"github.com/ledgerkeep/walletd/internal/api/handlers"
	"github.com/ledgerkeep/walletd/internal/model"
)

var _ handlers.FundsService = (*FundsService)(nil)

type FundsService struct {
	repo model.FundsRepository
}

func NewFundsService(repo model.FundsRepository) *FundsService {
	return &FundsService{
		repo: repo,
	}
}

func (f *FundsService) GetBalance(
	ctx context.Context,
	userID int,
) (model.Balance, error) {
	return f.repo.GetBalance(ctx, userID)
}

func (f *FundsService) GetWithdrawnTotal(
	ctx context.Context,
	userID int,
) (model.Amount, error) {
	return f.repo.GetWithdrawnTotal(ctx, userID)
}

// Withdraw checks the requested amount against the current balance and, if
// the funds suffice, records the withdrawal. The storage re-checks the
// balance inside its transaction; the check here rejects doomed requests
// before a transaction is opened and is the authoritative contract for the
// amount/balance comparison.
func (f *FundsService) Withdraw(
	ctx context.Context,
	userID int,
	destination string,
	amount model.Amount,
) error {
	balance, err := f.repo.GetBalance(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	if _, err := model.Withdraw(balance, amount); err != nil {
		return err
	}

	return f.repo.RecordWithdrawal(ctx, userID, destination, amount)
}
