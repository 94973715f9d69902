package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestLoginUseCase_Execute(t *testing.T) {
	admin := newTestUser(t, 1, "admin", authorization.RoleAdmin, "admin123")
	repo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			if username == "admin" {
				return admin, nil
			}
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	var issuedFor uint
	var issuedRole authorization.UserRole
	tokens := &mockTokenIssuer{
		GenerateFunc: func(userID uint, username string, role authorization.UserRole) (string, int64, error) {
			issuedFor, issuedRole = userID, role
			return "signed", 3600, nil
		},
	}
	uc := NewLoginUseCase(repo, auth.NewSHA256PasswordHasher(), tokens, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: " admin ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "signed", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, uint(1), issuedFor)
	assert.Equal(t, authorization.RoleAdmin, issuedRole)
	assert.Equal(t, "admin", result.User.Username())
}

func TestLoginUseCase_Execute_GenericFailure(t *testing.T) {
	admin := newTestUser(t, 1, "admin", authorization.RoleAdmin, "admin123")
	repo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			if username == "admin" {
				return admin, nil
			}
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	uc := NewLoginUseCase(repo, auth.NewSHA256PasswordHasher(), &mockTokenIssuer{}, logger.NewNopLogger())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "unknown user", username: "ghost", password: "admin123"},
		{name: "empty password", username: "admin", password: ""},
		{name: "empty username", username: "", password: "admin123"},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), LoginCommand{Username: tt.username, Password: tt.password})
			require.Error(t, err)
			assert.True(t, errors.IsUnauthorizedError(err))
			messages = append(messages, errors.GetAppError(err).Message)
		})
	}
	for _, m := range messages {
		assert.Equal(t, messages[0], m)
	}
}

func TestLoginUseCase_Execute_TokenFailure(t *testing.T) {
	admin := newTestUser(t, 1, "admin", authorization.RoleAdmin, "admin123")
	repo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) { return admin, nil },
	}
	tokens := &mockTokenIssuer{
		GenerateFunc: func(uint, string, authorization.UserRole) (string, int64, error) {
			return "", 0, assert.AnError
		},
	}
	uc := NewLoginUseCase(repo, auth.NewSHA256PasswordHasher(), tokens, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: "admin123"})
	require.Error(t, err)
	assert.False(t, errors.IsUnauthorizedError(err))
}
