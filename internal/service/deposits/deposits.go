package deposits

import (
	"context"

	"github.com/ledgerkeep/walletd/internal/api/handlers"
	"github.com/ledgerkeep/walletd/internal/model"
)

var _ handlers.DepositsService = (*DepositsService)(nil)

type DepositsService struct {
	repo model.DepositsRepository
}

func NewDepositsService(repo model.DepositsRepository) *DepositsService {
	return &DepositsService{
		repo: repo,
	}
}

func (s *DepositsService) GetDepositsByUser(
	ctx context.Context,
	userID int,
) ([]model.Deposit, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *DepositsService) AddDeposit(
	ctx context.Context,
	userID int,
	reference string,
) error {
	deposit := model.NewDeposit(userID, reference)

	return s.repo.AddDeposit(ctx, deposit)
}
