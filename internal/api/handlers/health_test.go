package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_handlers "github.com/ledgerkeep/walletd/internal/api/handlers/mocks"
)

func TestHealthHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	t.Run("storage reachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_handlers.NewMockHealthService(ctrl)
		m.EXPECT().Check(gomock.Any()).Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		NewHealthHandler(m).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("storage down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := mock_handlers.NewMockHealthService(ctrl)
		m.EXPECT().Check(gomock.Any()).Return(errors.New("storage unreachable"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		NewHealthHandler(m).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
