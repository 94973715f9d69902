package permission

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockEnforcer struct {
	EnforceFunc func(subject, resource, action string) (bool, error)
}

func (m *mockEnforcer) Enforce(subject, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(subject, resource, action)
	}
	return false, nil
}

func TestChecker(t *testing.T) {
	var gotSubject, gotResource, gotAction string
	enforcer := &mockEnforcer{
		EnforceFunc: func(subject, resource, action string) (bool, error) {
			gotSubject, gotResource, gotAction = subject, resource, action
			return subject == "it_staff", nil
		},
	}
	c := NewChecker(enforcer, logger.NewNopLogger())
	staff := authorization.Actor{UserID: 2, Role: authorization.RoleITStaff}
	user := authorization.Actor{UserID: 3, Role: authorization.RoleUser}

	require.NoError(t, c.Require(staff, permission.ResourceReport, permission.ActionRead))
	assert.Equal(t, "it_staff", gotSubject)
	assert.Equal(t, "report", gotResource)
	assert.Equal(t, "read", gotAction)

	err := c.Require(user, permission.ResourceReport, permission.ActionRead)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	assert.True(t, c.RoleCanReceive(authorization.RoleITStaff))
	assert.False(t, c.RoleCanReceive(authorization.RoleUser))
}

func TestChecker_DeniesOnErrorAndUnknownRole(t *testing.T) {
	calls := 0
	c := NewChecker(&mockEnforcer{
		EnforceFunc: func(subject, resource, action string) (bool, error) {
			calls++
			return true, stderrors.New("adapter down")
		},
	}, logger.NewNopLogger())

	assert.False(t, c.Allowed(authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}, permission.ResourceUser, permission.ActionManage))
	assert.False(t, c.Allowed(authorization.Actor{UserID: 1, Role: "root"}, permission.ResourceUser, permission.ActionManage))
	assert.Equal(t, 1, calls)
}
