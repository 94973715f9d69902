package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRole(t *testing.T) {
	tests := []struct {
		role    UserRole
		valid   bool
		staff   bool
		isAdmin bool
	}{
		{RoleAdmin, true, true, true},
		{RoleITStaff, true, true, false},
		{RoleUser, true, false, false},
		{UserRole("manager"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.IsValid())
			assert.Equal(t, tt.staff, tt.role.IsStaff())
			assert.Equal(t, tt.isAdmin, tt.role.IsAdmin())
		})
	}
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("it_staff")
	require.NoError(t, err)
	assert.Equal(t, RoleITStaff, role)

	_, err = ParseUserRole("root")
	assert.Error(t, err)
}
