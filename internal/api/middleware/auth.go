package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ledgerkeep/walletd/internal/service/auth"
)

type ctxKey string

// CtxUserIDKey holds the authenticated wallet owner's user id in the
// request context.
const CtxUserIDKey ctxKey = "user_id"

// RequireJWT rejects requests without a valid bearer token and stores the
// token's user id in the request context for the wallet handlers.
func RequireJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				slog.Warn(
					"request without bearer token",
					slog.String("path", r.URL.Path),
				)
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			userID, err := auth.UserIDFromToken(secret, token)
			if err != nil {
				slog.Warn(
					"rejected wallet token",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				http.Error(
					w,
					http.StatusText(http.StatusUnauthorized),
					http.StatusUnauthorized,
				)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
