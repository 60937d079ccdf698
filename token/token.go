package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoppee-dev/shoppee-api/config"
	"github.com/shoppee-dev/shoppee-api/models"
)

type SignedDetails struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func GenerateToken(user models.User) (string, error) {
	claims := &SignedDetails{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(
				time.Minute * time.Duration(config.Cfg.Server.ExpirationMinutes))),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Cfg.Server.SecretKey))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

func ValidateToken(signedToken string) (*SignedDetails, error) {
	parsed, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(config.Cfg.Server.SecretKey), nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*SignedDetails)
	if !ok || !parsed.Valid {
		return nil, errors.New("the token is invalid")
	}
	return claims, nil
}
