package model

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
)

//go:generate mockgen -destination ../service/funds/mocks/funds_repo.go . FundsRepository
type FundsRepository interface {
	GetBalance(ctx context.Context, userID int) (Balance, error)
	GetWithdrawnTotal(ctx context.Context, userID int) (Amount, error)
	RecordWithdrawal(
		ctx context.Context,
		userID int,
		destination string,
		amount Amount,
	) error
}

// Balance is funds currently held on an account, in minor units. It is a
// distinct type rather than an alias so that it cannot be confused with
// Amount at a call site.
type Balance uint64

func (b Balance) Uint64() uint64 {
	return uint64(b)
}

// Amount is a quantity requested for withdrawal, in minor units.
type Amount uint64

func (a Amount) Uint64() uint64 {
	return uint64(a)
}

// Withdraw deducts amount from balance and returns the resulting balance.
// It fails with ErrInsufficientFunds when amount strictly exceeds balance;
// withdrawing the exact balance yields zero. The check must happen before
// the subtraction: both quantities are unsigned and an unchecked subtraction
// would wrap instead of signalling an error.
func Withdraw(balance Balance, amount Amount) (Balance, error) {
	if amount.Uint64() > balance.Uint64() {
		return 0, ErrInsufficientFunds
	}
	return balance - Balance(amount), nil
}

func (b Balance) MarshalJSON() ([]byte, error) {
	return marshalMinorUnits(uint64(b)), nil
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	v, err := unmarshalMinorUnits(data)
	if err != nil {
		return err
	}
	*b = Balance(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return marshalMinorUnits(uint64(a)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	v, err := unmarshalMinorUnits(data)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// marshalMinorUnits renders minor units as a major-unit decimal number,
// trimming trailing zeros in the fraction.
func marshalMinorUnits(v uint64) []byte {
	intPart := v / 100
	frac := v % 100

	switch {
	case frac == 0:
		return []byte(fmt.Sprintf("%d", intPart))
	case frac%10 == 0:
		return []byte(fmt.Sprintf("%d.%d", intPart, frac/10))
	default:
		return []byte(fmt.Sprintf("%d.%02d", intPart, frac))
	}
}

// maxMajorUnits is the largest major-unit value whose minor-unit form still
// fits in a uint64.
const maxMajorUnits = (1<<64 - 1 - 99) / 100

func unmarshalMinorUnits(data []byte) (uint64, error) {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return 0, fmt.Errorf("invalid amount value %s: %w", s, err)
		}
		s = unquoted
	}
	if s == "" {
		return 0, nil
	}

	if !strings.Contains(s, ".") {
		intPart, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount value %s: %w", s, err)
		}
		if intPart > maxMajorUnits {
			return 0, fmt.Errorf("amount value %s overflows", s)
		}
		return intPart * 100, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid amount value %s", s)
	}
	intPart, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount value %s: %w", s, err)
	}
	if intPart > maxMajorUnits {
		return 0, fmt.Errorf("amount value %s overflows", s)
	}
	fracPart := parts[1]
	if len(fracPart) == 1 {
		fracPart += "0"
	}
	if len(fracPart) != 2 {
		return 0, fmt.Errorf("invalid amount value %s", s)
	}
	frac, err := strconv.ParseUint(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount value %s: %w", s, err)
	}

	return intPart*100 + frac, nil
}
