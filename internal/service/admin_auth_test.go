package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/utils/jwt"
	"github.com/toyshop/storefront/internal/utils/password"
)

func TestAdminAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := password.NewBCryptHasher(4)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	manager := jwt.NewManager("jwt-secret", time.Hour)

	t.Run("Success", func(t *testing.T) {
		svc := NewAdminAuthService(hash, hasher, manager, zap.NewNop())

		token, err := svc.Login(ctx, "s3cret")
		require.NoError(t, err)

		subject, err := manager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, subject)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc := NewAdminAuthService(hash, hasher, manager, zap.NewNop())

		_, err := svc.Login(ctx, "guess")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Hash not configured", func(t *testing.T) {
		svc := NewAdminAuthService("", hasher, manager, zap.NewNop())

		_, err := svc.Login(ctx, "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
