package withdrawals

import (
	"context"

	"github.com/ledgerkeep/walletd/internal/api/handlers"
	"github.com/ledgerkeep/walletd/internal/model"
)

var _ handlers.WithdrawalsService = (*WithdrawalsService)(nil)

type WithdrawalsService struct {
	repo model.WithdrawalsRepository
}

func NewWithdrawalsService(
	repo model.WithdrawalsRepository,
) *WithdrawalsService {
	return &WithdrawalsService{
		repo: repo,
	}
}

func (s *WithdrawalsService) GetWithdrawalsByUser(
	ctx context.Context,
	userID int,
) ([]model.Withdrawal, error) {
	return s.repo.GetByUserID(ctx, userID)
}
