package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appperm "helpdesk/internal/application/permission"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

var (
	testNow    = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	adminActor = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	staffActor = authorization.Actor{UserID: 2, Role: authorization.RoleITStaff}
	userActor  = authorization.Actor{UserID: 3, Role: authorization.RoleUser}
)

func newTestChecker(t *testing.T) *appperm.Checker {
	t.Helper()
	enforcer, err := permission.NewEnforcer(nil, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, enforcer.EnsurePolicies(permission.DefaultPolicies()))
	return appperm.NewChecker(enforcer, logger.NewNopLogger())
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.NewSHA256PasswordHasher().Hash(password)
	require.NoError(t, err)
	return h
}

func newTestUser(t *testing.T, id uint, username string, role authorization.UserRole, password string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, user.Profile{
		Username:   username,
		Email:      username + "@company.com",
		FullName:   "Test " + username,
		Role:       role,
		Department: "IT",
	}, hashOf(t, password), testNow)
	require.NoError(t, err)
	return u
}

type fakeTransactor struct{}

func (fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, username string, role authorization.UserRole) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(userID uint, username string, role authorization.UserRole) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, role)
	}
	return "token", 28800, nil
}

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string, excludeID uint) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string, excludeID uint) (bool, error)
	ListFunc             func(ctx context.Context) ([]*user.User, error)
	ListStaffFunc        func(ctx context.Context) ([]*user.User, error)
	HasReferencesFunc    func(ctx context.Context, id uint) (bool, error)
	GetStatsFunc         func(ctx context.Context, ids []uint) (map[uint]user.Stats, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username, excludeID)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	if m.ListStaffFunc != nil {
		return m.ListStaffFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) HasReferences(ctx context.Context, id uint) (bool, error) {
	if m.HasReferencesFunc != nil {
		return m.HasReferencesFunc(ctx, id)
	}
	return false, nil
}

func (m *mockUserRepository) GetStats(ctx context.Context, ids []uint) (map[uint]user.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, ids)
	}
	return map[uint]user.Stats{}, nil
}
