package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ledgerkeep/walletd/internal/model"
)

//go:generate mockgen -destination ./mocks/withdrawals_mock.go . WithdrawalsService
type WithdrawalsService interface {
	GetWithdrawalsByUser(
		ctx context.Context,
		userID int,
	) ([]model.Withdrawal, error)
}

type withdrawalsResponse struct {
	Destination string       `json:"destination"`
	Amount      model.Amount `json:"amount"`
	ProcessedAt string       `json:"processed_at"`
}

// NewWithdrawalsHandler lists the wallet's withdrawal history, newest
// first. An empty history answers 204 rather than an empty array.
func NewWithdrawalsHandler(svc WithdrawalsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireWalletOwner(w, r)
		if !ok {
			return
		}

		history, err := svc.GetWithdrawalsByUser(r.Context(), userID)
		if err != nil {
			slog.Error(
				"failed to read withdrawal history",
				slog.Int("user_id", userID),
				slog.Any("error", err),
			)
			http.Error(
				w,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError,
			)
			return
		}

		if len(history) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]withdrawalsResponse, 0, len(history))
		for _, wd := range history {
			response = append(response, withdrawalsResponse{
				Destination: wd.Destination,
				Amount:      wd.Amount,
				ProcessedAt: wd.ProcessedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, response)
	})
}
