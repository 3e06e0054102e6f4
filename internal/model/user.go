package model

import (
	"context"
	"errors"
	"unicode/utf8"
)

var (
	ErrUserExists             = errors.New("user already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPasswordPolicyViolated = errors.New("password policy violated")
)

// Password bounds are counted in runes. The upper bound keeps the
// password under bcrypt's 72-byte input limit for any realistic input.
const (
	minPasswordRunes = 12
	maxPasswordRunes = 64
)

//go:generate mockgen -destination ../service/auth/mocks/users_repo.go . UsersRepository
type UsersRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByLogin(ctx context.Context, login string) (*User, error)
}

// User is a wallet owner. Each owner holds exactly one wallet, so the
// user id doubles as the wallet key throughout the service.
type User struct {
	ID           int
	Login        string
	PasswordHash string
}

func NewUser(login string) *User {
	return &User{Login: login}
}

func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordRunes || n > maxPasswordRunes {
		return ErrPasswordPolicyViolated
	}

	return nil
}
