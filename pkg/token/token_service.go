package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/internal/utils"
)

type (
	// TokenService signs and validates the short-lived password-reset
	// token. Session credentials are opaque and live in the database;
	// only the reset flow uses signed tokens.
	TokenService interface {
		GenerateResetToken(userID string, duration time.Duration) (string, error)
		ValidateResetToken(token string) (string, error)
	}

	resetClaims struct {
		UserID string `json:"user_id"`
		jwt.RegisteredClaims
	}

	tokenService struct {
		secretKey string
		issuer    string
	}
)

func NewTokenService() TokenService {
	return &tokenService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    "RECIPE-CATALOG",
	}
}

func (s *tokenService) GenerateResetToken(userID string, duration time.Duration) (string, error) {
	claims := resetClaims{
		userID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *tokenService) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(s.secretKey), nil
}

func (s *tokenService) ValidateResetToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &resetClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*resetClaims)
	if !ok || claims.UserID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.UserID, nil
}
