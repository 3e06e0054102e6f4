package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// walletClaims is the token payload: standard expiry plus the wallet
// owner's user id.
type walletClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"uid"`
}

func IssueToken(secret string, ttl time.Duration, userID int) (string, error) {
	now := time.Now()
	claims := walletClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// UserIDFromToken verifies the token signature and expiry and returns the
// wallet owner's user id. Tokens signed with anything but HMAC are
// rejected regardless of their payload.
func UserIDFromToken(secret, tokenString string) (int, error) {
	claims := &walletClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected signing method %s", t.Method.Alg(),
				)
			}
			return []byte(secret), nil
		},
	)
	if err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("token is not valid")
	}

	return claims.UserID, nil
}
