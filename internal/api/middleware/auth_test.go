package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerkeep/walletd/internal/service/auth"
)

func TestRequireJWT(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	const secret = "secret"

	token, err := auth.IssueToken(secret, time.Minute, 42)
	assert.NoError(t, err)

	expired, err := auth.IssueToken(secret, -time.Minute, 42)
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
		wantUserID int
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + token,
			wantCode:   http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: token,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + expired,
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			authHeader: "Bearer invalid.token.value",
			wantCode:   http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotUserID int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				v := r.Context().Value(CtxUserIDKey)
				gotUserID, _ = v.(int)
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireJWT(secret)(next)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantUserID != 0 {
				assert.Equal(t, tc.wantUserID, gotUserID)
			}
		})
	}
}
