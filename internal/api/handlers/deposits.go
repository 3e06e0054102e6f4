package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ledgerkeep/walletd/internal/model"
)

//go:generate mockgen -destination ./mocks/deposits_mock.go . DepositsService
type DepositsService interface {
	GetDepositsByUser(ctx context.Context, userID int) ([]model.Deposit, error)
	AddDeposit(
		ctx context.Context,
		userID int,
		reference string,
	) error
}

type depositsGetResponse struct {
	Reference string              `json:"reference"`
	Status    model.DepositStatus `json:"status"`
	Amount    model.Amount        `json:"amount"`
	CreatedAt string              `json:"created_at"`
}

// NewDepositsGetHandler lists the wallet's deposits with their processor
// status. Pending deposits show a zero amount until confirmation.
func NewDepositsGetHandler(svc DepositsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireWalletOwner(w, r)
		if !ok {
			return
		}

		list, err := svc.GetDepositsByUser(r.Context(), userID)
		if err != nil {
			slog.Error(
				"failed to read wallet deposits",
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

		if len(list) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]depositsGetResponse, 0, len(list))
		for _, d := range list {
			response = append(response, depositsGetResponse{
				Reference: d.Reference,
				Status:    d.Status,
				Amount:    d.Amount,
				CreatedAt: d.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, response)
	})
}

// NewDepositsPostHandler registers a payment reference for collection.
// The reference arrives as a bare text/plain body. Re-registering one's
// own reference is a no-op 200; someone else's reference is a 409.
func NewDepositsPostHandler(svc DepositsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireWalletOwner(w, r)
		if !ok {
			return
		}

		if ct := r.Header.Get("Content-Type"); ct != "text/plain" {
			slog.Warn(
				"deposit registration with unsupported content type",
				slog.String("content_type", ct),
			)
			http.Error(w, "wrong content type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, "invalid reference number", http.StatusBadRequest)
			return
		}

		reference := strings.TrimSpace(string(body))
		if reference == "" {
			http.Error(w, "empty reference number", http.StatusBadRequest)
			return
		}

		if !model.ValidateNumber(reference) {
			slog.Warn(
				"deposit reference fails checksum",
				slog.Int("user_id", userID),
				slog.String("reference", reference),
			)
			http.Error(
				w,
				"failed to validate reference number",
				http.StatusUnprocessableEntity,
			)
			return
		}

		if err := svc.AddDeposit(r.Context(), userID, reference); err != nil {
			switch {
			case errors.Is(err, model.ErrDepositAlreadyExist):
				http.Error(w, "deposit already added", http.StatusOK)
			case errors.Is(err, model.ErrDepositAlreadyAddedByOtherUser):
				http.Error(
					w,
					"deposit already added by other user",
					http.StatusConflict,
				)
			default:
				slog.Error(
					"failed to register deposit",
					slog.Int("user_id", userID),
					slog.Any("error", err),
				)
				http.Error(
					w,
					http.StatusText(http.StatusInternalServerError),
					http.StatusInternalServerError,
				)
			}
			return
		}

		w.WriteHeader(http.StatusAccepted)
	})
}
