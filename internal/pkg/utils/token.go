package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/gommon/random"
	"github.com/spf13/viper"

	"github.com/niepng/niep-backend/internal/pkg/constants"
)

const SessionTTL = 24 * time.Hour

// AuthTokenWrapper is the admin session token payload. Secret is compared
// against the configured admin secret on every authenticated request so
// rotating the secret invalidates outstanding sessions.
type AuthTokenWrapper struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	now := time.Now()
	wrapper.StandardClaims = jwt.StandardClaims{
		Id:        random.String(32),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)

	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperAuthSecret)))
	if err != nil {
		return "", fmt.Errorf("failed to sign auth token: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}

	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperAuthSecret)), nil
	})
	if err != nil {
		return nil, constants.ErrInvalidToken
	}

	if !token.Valid {
		return nil, constants.ErrInvalidToken
	}

	return wrapper, nil
}
