package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name    string
		balance Balance
		amount  Amount
		want    Balance
		wantErr error
	}{
		{
			name:    "partial withdrawal",
			balance: 500,
			amount:  200,
			want:    300,
		},
		{
			name:    "zero from zero",
			balance: 0,
			amount:  0,
			want:    0,
		},
		{
			name:    "exact balance drains to zero",
			balance: 100,
			amount:  100,
			want:    0,
		},
		{
			name:    "one over balance",
			balance: 100,
			amount:  101,
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "withdrawal from empty account",
			balance: 0,
			amount:  1,
			wantErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Withdraw(tt.balance, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithdraw_LeavesInputIntact(t *testing.T) {
	balance := Balance(500)

	got, err := Withdraw(balance, 200)

	assert.NoError(t, err)
	assert.Equal(t, Balance(300), got)
	assert.Equal(t, Balance(500), balance)
}

func TestUnwrapAccessors(t *testing.T) {
	assert.Equal(t, uint64(12345), Balance(12345).Uint64())
	assert.Equal(t, uint64(12345), Amount(12345).Uint64())
}

func TestAmountJSON(t *testing.T) {
	tests := []struct {
		name  string
		units Amount
		want  string
	}{
		{name: "whole", units: 50000, want: "500"},
		{name: "tenths", units: 50050, want: "500.5"},
		{name: "hundredths", units: 50055, want: "500.55"},
		{name: "zero", units: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.units)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(b))

			var back Amount
			assert.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, tt.units, back)
		})
	}
}

func TestAmountJSON_RejectsNegative(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`-10`), &a))

	var b Balance
	assert.Error(t, json.Unmarshal([]byte(`-0.5`), &b))
}

func TestAmountJSON_RejectsOverflow(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "integral major units past uint64 range", in: `184467440737095517`},
		{name: "fractional major units past uint64 range", in: `184467440737095517.11`},
		{name: "quoted overflow", in: `"184467440737095517"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			assert.Error(t, json.Unmarshal([]byte(tt.in), &a))
		})
	}

	// the largest representable value still round-trips
	var a Amount
	assert.NoError(t, json.Unmarshal([]byte(`184467440737095516`), &a))
	assert.Equal(t, Amount(18446744073709551600), a)
}

func TestAmountJSON_QuotedStrings(t *testing.T) {
	var a Amount
	assert.NoError(t, json.Unmarshal([]byte(`"500.5"`), &a))
	assert.Equal(t, Amount(50050), a)

	// unbalanced quote must not be silently trimmed
	_, err := unmarshalMinorUnits([]byte(`"5`))
	assert.Error(t, err)
}
