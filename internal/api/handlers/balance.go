package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ledgerkeep/walletd/internal/model"
)

//go:generate mockgen -destination ./mocks/funds_mock.go . FundsService
type FundsService interface {
	GetBalance(ctx context.Context, userID int) (model.Balance, error)
	GetWithdrawnTotal(ctx context.Context, userID int) (model.Amount, error)
	Withdraw(
		ctx context.Context,
		userID int,
		destination string,
		amount model.Amount,
	) error
}

type balanceResponse struct {
	CurrentBalance model.Balance `json:"current"`
	TotalWithdrawn model.Amount  `json:"withdrawn"`
}

// NewBalanceHandler reports the wallet's spendable balance alongside the
// lifetime withdrawn total.
func NewBalanceHandler(svc FundsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireWalletOwner(w, r)
		if !ok {
			return
		}

		balance, err := svc.GetBalance(r.Context(), userID)
		if err != nil {
			slog.Error(
				"failed to read wallet balance",
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

		withdrawn, err := svc.GetWithdrawnTotal(r.Context(), userID)
		if err != nil {
			slog.Error(
				"failed to read withdrawn total",
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

		writeJSON(w, balanceResponse{
			CurrentBalance: balance,
			TotalWithdrawn: withdrawn,
		})
	})
}

type withdrawRequest struct {
	Destination string       `json:"destination"`
	Amount      model.Amount `json:"amount"`
}

// NewWithdrawHandler moves funds out of the wallet. The request is
// validated here; whether the balance covers it is decided by the funds
// service, and a refusal maps to 402.
func NewWithdrawHandler(svc FundsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireWalletOwner(w, r)
		if !ok {
			return
		}

		var req withdrawRequest
		if !ValidateParseJSONRequest(w, r, &req) {
			return
		}

		destination := strings.TrimSpace(req.Destination)
		if destination == "" {
			http.Error(w, "empty destination number", http.StatusBadRequest)
			return
		}

		if !model.ValidateNumber(destination) {
			slog.Warn(
				"withdrawal to an invalid destination refused",
				slog.Int("user_id", userID),
				slog.String("destination", destination),
			)
			http.Error(
				w,
				"failed to validate destination number",
				http.StatusUnprocessableEntity,
			)
			return
		}

		if !model.ValidateAmount(req.Amount) {
			http.Error(
				w,
				"failed to validate amount",
				http.StatusUnprocessableEntity,
			)
			return
		}

		err := svc.Withdraw(r.Context(), userID, destination, req.Amount)
		if err != nil {
			if errors.Is(err, model.ErrInsufficientFunds) {
				slog.Info(
					"withdrawal refused, balance too low",
					slog.Int("user_id", userID),
				)
				http.Error(w, "insufficient funds", http.StatusPaymentRequired)
				return
			}
			slog.Error(
				"failed to withdraw from wallet",
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

		w.WriteHeader(http.StatusOK)
	})
}
