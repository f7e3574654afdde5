package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// signingKey is resolved per call, not at package init, so a JWT_SECRET
// loaded from .env in main still takes effect.
func signingKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("secret_key")
}

// Claims duplicates team and portal from persisted state so game endpoints
// can authorize without extra lookups. Any mutation of either value must
// re-issue the token.
type Claims struct {
	UserID uint32 `json:"user_id"`
	TeamID uint32 `json:"team_id"`
	Portal string `json:"portal,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(userID, teamID uint32, portal string) (string, error) {
	claims := Claims{
		UserID: userID,
		TeamID: teamID,
		Portal: portal,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, err
}
