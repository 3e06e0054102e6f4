package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mock_handlers "github.com/ledgerkeep/walletd/internal/api/handlers/mocks"
	"github.com/ledgerkeep/walletd/internal/api/middleware"
	"github.com/ledgerkeep/walletd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const refNumByLuhn = "79927398713"

func postReference(
	t *testing.T,
	h http.Handler,
	userID int,
	contentType, reference string,
) *httptest.ResponseRecorder {
	t.Helper()

	ctx := context.Background()
	if userID != 0 {
		ctx = context.WithValue(t.Context(), middleware.CtxUserIDKey, userID)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"/",
		strings.NewReader(reference),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDepositsGetHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("wallet with deposits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			GetDepositsByUser(gomock.Any(), 7).
			Return([]model.Deposit{
				{
					ID:        1,
					UserID:    7,
					Reference: refNumByLuhn,
					Status:    model.DepositConfirmed,
					Amount:    model.Amount(50050),
					CreatedAt: createdAt,
				},
				{
					ID:        2,
					UserID:    7,
					Reference: "4539148803436467",
					Status:    model.DepositPending,
					Amount:    model.Amount(0),
					CreatedAt: createdAt,
				},
			}, nil)

		rec := getAsUser(t, NewDepositsGetHandler(m), 7)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(
			t,
			"application/json",
			rec.Header().Get("Content-Type"),
		)
		assert.JSONEq(t, `[
			{
				"reference": "79927398713",
				"status": "CONFIRMED",
				"amount": 500.5,
				"created_at": "2026-03-14T09:30:00Z"
			},
			{
				"reference": "4539148803436467",
				"status": "PENDING",
				"amount": 0,
				"created_at": "2026-03-14T09:30:00Z"
			}
		]`, rec.Body.String())
	})

	t.Run("empty wallet history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			GetDepositsByUser(gomock.Any(), 7).
			Return([]model.Deposit{}, nil)

		rec := getAsUser(t, NewDepositsGetHandler(m), 7)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)

		rec := getAsUser(t, NewDepositsGetHandler(m), 0)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			GetDepositsByUser(gomock.Any(), 7).
			Return(nil, errors.New("db error"))

		rec := getAsUser(t, NewDepositsGetHandler(m), 7)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDepositsPostHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	t.Run("accepted for collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			AddDeposit(gomock.Any(), 7, refNumByLuhn).
			Return(nil)

		rec := postReference(
			t, NewDepositsPostHandler(m), 7, "text/plain", refNumByLuhn,
		)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			AddDeposit(gomock.Any(), 7, refNumByLuhn).
			Return(nil)

		rec := postReference(
			t, NewDepositsPostHandler(m), 7, "text/plain",
			"  "+refNumByLuhn+"\n",
		)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("own reference registered twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			AddDeposit(gomock.Any(), 7, refNumByLuhn).
			Return(model.ErrDepositAlreadyExist)

		rec := postReference(
			t, NewDepositsPostHandler(m), 7, "text/plain", refNumByLuhn,
		)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reference claimed by another wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			AddDeposit(gomock.Any(), 7, refNumByLuhn).
			Return(model.ErrDepositAlreadyAddedByOtherUser)

		rec := postReference(
			t, NewDepositsPostHandler(m), 7, "text/plain", refNumByLuhn,
		)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("refused before the service is reached", func(t *testing.T) {
		// No AddDeposit expectation is set: reaching the service
		// fails the test.
		tests := []struct {
			name        string
			contentType string
			reference   string
			wantCode    int
		}{
			{
				name:        "empty reference",
				contentType: "text/plain",
				reference:   "",
				wantCode:    http.StatusBadRequest,
			},
			{
				name:        "reference fails checksum",
				contentType: "text/plain",
				reference:   "123123",
				wantCode:    http.StatusUnprocessableEntity,
			},
			{
				name:        "wrong content type",
				contentType: "application/json",
				reference:   refNumByLuhn,
				wantCode:    http.StatusUnsupportedMediaType,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				m := mock_handlers.NewMockDepositsService(ctrl)

				rec := postReference(
					t,
					NewDepositsPostHandler(m),
					7,
					tc.contentType,
					tc.reference,
				)

				assert.Equal(t, tc.wantCode, rec.Code)
			})
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)

		rec := postReference(
			t, NewDepositsPostHandler(m), 0, "text/plain", refNumByLuhn,
		)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockDepositsService(ctrl)
		m.EXPECT().
			AddDeposit(gomock.Any(), 7, refNumByLuhn).
			Return(errors.New("db error"))

		rec := postReference(
			t, NewDepositsPostHandler(m), 7, "text/plain", refNumByLuhn,
		)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
