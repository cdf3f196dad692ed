package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = time.Hour

// ErrInvalidToken covers every verification failure. Callers must not be
// able to tell a bad signature from an expired token.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the identity assertion embedded in an access token: just
// enough to authorize follow-up requests without re-reading the row.
type Claims struct {
	UserID string `json:"id"`
	Status string `json:"status"`
	jwt.RegisteredClaims
}

// GenerateToken signs {id, status} with secret, expiring after ttl.
func GenerateToken(userID, status string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Status: status,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(secret)
}

// ParseToken verifies signature, signing method and expiry, returning the
// embedded claims. The claims identify the subject as of issuance time;
// whether that user still exists is the caller's problem.
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
