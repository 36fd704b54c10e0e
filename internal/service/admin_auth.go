package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/utils/jwt"
	"github.com/toyshop/storefront/internal/utils/password"
)

// AdminAuthService реализует domain.AdminAuthService: единственный пароль администратора
type AdminAuthService struct {
	passwordHash   string
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	logger         *zap.Logger
}

// NewAdminAuthService создает новый AdminAuthService
func NewAdminAuthService(
	passwordHash string,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *AdminAuthService {
	return &AdminAuthService{
		passwordHash:   passwordHash,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		logger:         logger,
	}
}

// Login проверяет пароль и выпускает токен сессии
func (s *AdminAuthService) Login(_ context.Context, adminPassword string) (string, error) {
	if s.passwordHash == "" {
		s.logger.Warn("admin login attempted but ADMIN_PASSWORD_HASH is not configured")
		return "", domain.ErrInvalidCredentials
	}

	if err := s.passwordHasher.Check(s.passwordHash, adminPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("admin auth service: failed to check password: %w", err)
	}

	token, err := s.jwtManager.Generate(jwt.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("admin auth service: failed to generate token: %w", err)
	}

	return token, nil
}
