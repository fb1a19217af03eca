//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-pms/internal/domain/user"
	"hotel-pms/internal/pkg/jwt"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/tests/common/builder"
	queriesmock "hotel-pms/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func newAuthService(t *testing.T) (commands.AuthCommands, *queriesmock.MockUserReadStore, *jwt.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockUserReadStore(ctrl)
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 24*time.Hour)
	return commands.NewAuthCommands(readStore, jwtService), readStore, jwtService
}

func mustCredentials(t *testing.T, email, password string) user.Credentials {
	t.Helper()
	credentials, err := user.NewCredentials(email, password)
	require.NoError(t, err)
	return credentials
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success: valid credentials yield a token pair", func(t *testing.T) {
		svc, readStore, jwtService := newAuthService(t)

		view := builder.NewUserBuilder().BuildReadModel()
		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, testPasswordHash, nil)
		readStore.EXPECT().UpdateLastLogin(ctx, view.ID).Return(nil)

		result, err := svc.Login(ctx, mustCredentials(t, view.Email, "password123"))

		require.NoError(t, err)
		assert.Equal(t, view, result.User)
		claims, err := jwtService.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, view.HotelID, claims.HotelID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("success: login survives a failed last-login update", func(t *testing.T) {
		svc, readStore, _ := newAuthService(t)

		view := builder.NewUserBuilder().BuildReadModel()
		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, testPasswordHash, nil)
		readStore.EXPECT().UpdateLastLogin(ctx, view.ID).Return(assert.AnError)

		_, err := svc.Login(ctx, mustCredentials(t, view.Email, "password123"))

		assert.NoError(t, err)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		svc, readStore, _ := newAuthService(t)

		view := builder.NewUserBuilder().BuildReadModel()
		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, testPasswordHash, nil)

		_, err := svc.Login(ctx, mustCredentials(t, view.Email, "wrong-password"))

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: unknown email reads as invalid credentials", func(t *testing.T) {
		svc, readStore, _ := newAuthService(t)

		// ユーザー列挙攻撃を防ぐため、存在しないユーザーもパスワード不一致と同じ扱い
		readStore.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, "", assert.AnError)

		_, err := svc.Login(ctx, mustCredentials(t, "nobody@example.com", "password123"))

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		svc, readStore, _ := newAuthService(t)

		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		readStore.EXPECT().FindByEmail(ctx, view.Email).Return(view, testPasswordHash, nil)

		_, err := svc.Login(ctx, mustCredentials(t, view.Email, "password123"))

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success: refresh token rotates the pair", func(t *testing.T) {
		svc, readStore, jwtService := newAuthService(t)

		view := builder.NewUserBuilder().BuildReadModel()
		role, err := user.NewRole(view.Role)
		require.NoError(t, err)
		refreshToken, err := jwtService.GenerateRefreshToken(view.ID, view.HotelID, role)
		require.NoError(t, err)

		readStore.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		pair, err := svc.RefreshToken(ctx, refreshToken)

		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("error: access token rejected as refresh token", func(t *testing.T) {
		svc, _, jwtService := newAuthService(t)

		view := builder.NewUserBuilder().BuildReadModel()
		role, err := user.NewRole(view.Role)
		require.NoError(t, err)
		accessToken, err := jwtService.GenerateAccessToken(view.ID, view.HotelID, role)
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, accessToken)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.RefreshToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: user deleted since issuance", func(t *testing.T) {
		svc, readStore, jwtService := newAuthService(t)

		view := builder.NewUserBuilder().BuildReadModel()
		role, err := user.NewRole(view.Role)
		require.NoError(t, err)
		refreshToken, err := jwtService.GenerateRefreshToken(view.ID, view.HotelID, role)
		require.NoError(t, err)

		readStore.EXPECT().FindByID(ctx, view.ID).Return(nil, assert.AnError)

		_, err = svc.RefreshToken(ctx, refreshToken)

		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("error: user deactivated since issuance", func(t *testing.T) {
		svc, readStore, jwtService := newAuthService(t)

		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		role, err := user.NewRole(view.Role)
		require.NoError(t, err)
		refreshToken, err := jwtService.GenerateRefreshToken(view.ID, view.HotelID, role)
		require.NoError(t, err)

		readStore.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err = svc.RefreshToken(ctx, refreshToken)

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
