package util

import (
	"cinex_api/configs"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type MyJwtClaims struct {
	UserId string `json:"userId"`
	jwt.RegisteredClaims
}

var ErrSecretNotConfigured = errors.New("ACCESS_TOKEN_SECRET is not configured")

// SignToken issues a session token for userId, expiring after the
// configured TTL.
func SignToken(userId string) (string, error) {
	if configs.GetConfigs().AccessTokenSecret == "" {
		return "", ErrSecretNotConfigured
	}
	return signTokenWithTTL(userId, configs.GetConfigs().AccessTokenExpire)
}

func signTokenWithTTL(userId string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := MyJwtClaims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.GetConfigs().AccessTokenSecret))
}

// VerifyToken checks signature and expiry. Callers can distinguish an
// expired token with errors.Is(err, jwt.ErrTokenExpired); every other
// failure means the token is invalid. A token signed with an unknown
// secret always fails as invalid, never as expired.
func VerifyToken(tokenString string) (*MyJwtClaims, error) {
	if configs.GetConfigs().AccessTokenSecret == "" {
		return nil, ErrSecretNotConfigured
	}

	claims, err := parseWithSecret(tokenString, configs.GetConfigs().AccessTokenSecret)
	if err == nil {
		return claims, nil
	}

	// Accept tokens signed with the previous secret during rotation windows.
	prevSecret := configs.GetConfigs().PreviousAccessTokenSecret
	if prevSecret != "" && errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		if claims, prevErr := parseWithSecret(tokenString, prevSecret); prevErr == nil {
			return claims, nil
		}
	}

	return nil, err
}

func parseWithSecret(tokenString string, secret string) (*MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return &claims, nil
}
