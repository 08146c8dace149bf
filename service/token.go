package service

import (
	"fmt"
	"os"
	"time"

	jwt "github.com/golang-jwt/jwt"
)

var jwtKey = []byte(os.Getenv("HABITASK_JWT_SECRET"))

const apiTokenExpirationTime = 72 * time.Hour

// ApiTokenClaims are the bearer token claims the HTTP layer checks before
// calling into the services.
type ApiTokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.StandardClaims
}

func GenerateApiToken(userID int64, now time.Time) (string, error) {
	claims := &ApiTokenClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(apiTokenExpirationTime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func VerifyApiToken(tokenStr string) (*ApiTokenClaims, error) {
	claims := &ApiTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
