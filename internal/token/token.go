// Package token issues and verifies the HS256 access tokens that carry the
// authenticated subject's identity and role.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/somosmas/ong-api/internal/domain"
)

// Claims is the JWT payload for access tokens.
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and parses access tokens. It implements domain.TokenService.
type Service struct {
	secret []byte
	issuer string
}

// NewService creates a token Service with the given signing secret.
func NewService(secret, issuer string) (*Service, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret is required")
	}
	return &Service{secret: []byte(secret), issuer: issuer}, nil
}

// Generate signs a token embedding the user's id and role.
func (s *Service) Generate(userID uint, role string, expiry time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and extracts the subject it carries.
func (s *Service) Parse(tokenStr string) (domain.Subject, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Subject{}, domain.NewAppError(domain.CodeUnauthorized, "invalid token", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Subject{}, domain.NewAppError(domain.CodeUnauthorized, "invalid token claims", nil)
	}

	return domain.Subject{UserID: claims.UserID, Role: claims.Role}, nil
}
