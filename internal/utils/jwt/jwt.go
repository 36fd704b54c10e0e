package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleAdmin единственная роль, для которой выпускаются токены
	RoleAdmin = "admin"

	issuer = "storefront"
)

// ErrForbiddenRole токен валиден, но выпущен не для админки
var ErrForbiddenRole = errors.New("token role is not allowed")

// Claims сессия администратора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены сессий админки
type Manager struct {
	secretKey []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Generate выпускает токен администратора
func (m *Manager) Generate(subject string) (string, error) {
	now := m.now()
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate проверяет подпись, срок и роль, возвращает subject
func (m *Manager) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if claims.Role != RoleAdmin {
		return "", ErrForbiddenRole
	}

	return claims.Subject, nil
}
