package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ledgerkeep/walletd/internal/model"
)

//go:generate mockgen -destination ./mocks/auth_mock.go . AuthService
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// NewAuthRegisterHandler creates a wallet owner. A duplicate login,
// whether caught by the lookup or by the storage constraint, answers 409.
func NewAuthRegisterHandler(svc AuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		token, err := svc.Register(r.Context(), creds.Login, creds.Password)
		if err != nil {
			slog.Warn(
				"wallet registration refused",
				slog.String("login", creds.Login),
				slog.Any("error", err),
			)
			switch {
			case errors.Is(err, model.ErrUserExists):
				http.Error(
					w,
					http.StatusText(http.StatusConflict),
					http.StatusConflict,
				)
			case errors.Is(err, model.ErrPasswordPolicyViolated):
				http.Error(w, "password policy violated", http.StatusBadRequest)
			default:
				http.Error(
					w,
					http.StatusText(http.StatusInternalServerError),
					http.StatusInternalServerError,
				)
			}
			return
		}

		writeToken(w, token)
	})
}

// NewAuthLoginHandler exchanges owner credentials for a token. Unknown
// logins and wrong passwords are indistinguishable to the caller.
func NewAuthLoginHandler(svc AuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		token, err := svc.Login(r.Context(), creds.Login, creds.Password)
		if err != nil {
			slog.Warn(
				"wallet login refused",
				slog.String("login", creds.Login),
				slog.Any("error", err),
			)
			switch {
			case errors.Is(err, model.ErrUserNotFound),
				errors.Is(err, model.ErrInvalidCredentials):
				http.Error(
					w,
					"wrong username or password",
					http.StatusUnauthorized,
				)
			default:
				http.Error(
					w,
					http.StatusText(http.StatusInternalServerError),
					http.StatusInternalServerError,
				)
			}
			return
		}

		writeToken(w, token)
	})
}

func decodeCredentials(
	w http.ResponseWriter,
	r *http.Request,
) (credentialsRequest, bool) {
	var creds credentialsRequest
	if !ValidateParseJSONRequest(w, r, &creds) {
		return creds, false
	}

	creds.Login = strings.TrimSpace(creds.Login)
	if creds.Login == "" {
		http.Error(w, "empty login", http.StatusBadRequest)
		return creds, false
	}

	return creds, true
}

func writeToken(w http.ResponseWriter, token string) {
	b, err := json.Marshal(tokenResponse{Token: token})
	if err != nil {
		slog.Error("failed to marshal token response", slog.Any("error", err))
		http.Error(
			w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		slog.Warn("failed to write token response", slog.Any("error", err))
	}
}
