package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerkeep/walletd/internal/model"
)

// AuthService issues wallet access tokens. A token carries the wallet
// owner's user id; everything else about the wallet is looked up per
// request.
type AuthService struct {
	repo      model.UsersRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(
	repo model.UsersRepository,
	jwtSecret string,
	jwtTTL time.Duration,
) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Register creates a wallet owner and returns a signed token for it.
// The existence check is advisory only: the users.login UNIQUE constraint
// is what actually settles duplicate registrations, and the storage layer
// reports its violation as model.ErrUserExists.
func (a *AuthService) Register(
	ctx context.Context,
	login, password string,
) (string, error) {
	_, err := a.repo.GetByLogin(ctx, login)
	switch {
	case err == nil:
		return "", model.ErrUserExists
	case !errors.Is(err, model.ErrUserNotFound):
		return "", fmt.Errorf("login lookup: %w", err)
	}

	if err := model.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := model.NewUser(login)
	user.PasswordHash = hash

	created, err := a.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrUserExists) {
			return "", model.ErrUserExists
		}
		return "", fmt.Errorf("create wallet owner: %w", err)
	}

	slog.Info(
		"wallet owner registered",
		slog.String("login", created.Login),
		slog.Int("user_id", created.ID),
	)

	return IssueToken(a.jwtSecret, a.jwtTTL, created.ID)
}

// Login verifies the owner's credentials and returns a fresh token.
func (a *AuthService) Login(
	ctx context.Context,
	login, password string,
) (string, error) {
	user, err := a.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.ErrUserNotFound
		}
		return "", fmt.Errorf("login lookup: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", model.ErrInvalidCredentials
	}

	return IssueToken(a.jwtSecret, a.jwtTTL, user.ID)
}
