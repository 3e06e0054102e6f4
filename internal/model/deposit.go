package model

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	ErrDepositAlreadyExist            = errors.New("deposit already exist")
	ErrDepositAlreadyAddedByOtherUser = errors.New(
		"deposit already added by other user",
	)
)

type DepositsRepository interface {
	GetByUserID(ctx context.Context, userID int) ([]Deposit, error)
	AddDeposit(ctx context.Context, deposit *Deposit) error
}

type Deposit struct {
	ID        int
	UserID    int
	Reference string
	Amount    Amount
	Status    DepositStatus
	CreatedAt time.Time
}

func NewDeposit(userID int, reference string) *Deposit {
	return &Deposit{
		UserID:    userID,
		Reference: reference,
		Status:    DepositPending,
	}
}

type DepositStatus int

const (
	DepositPending DepositStatus = iota
	DepositConfirmed
	DepositRejected
)

func (s DepositStatus) String() string {
	switch s {
	case DepositPending:
		return "PENDING"
	case DepositConfirmed:
		return "CONFIRMED"
	case DepositRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s DepositStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DepositStatus) UnmarshalText(text []byte) error {
	return s.fromString(string(text))
}

func (s DepositStatus) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *DepositStatus) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.fromString(v)
	case []byte:
		return s.fromString(string(v))
	default:
		return fmt.Errorf("unsupported type %T", src)
	}
}

func (s *DepositStatus) fromString(v string) error {
	switch v {
	case "PENDING":
		*s = DepositPending
	case "CONFIRMED":
		*s = DepositConfirmed
	case "REJECTED":
		*s = DepositRejected
	default:
		return fmt.Errorf("unknown status %q", v)
	}
	return nil
}
