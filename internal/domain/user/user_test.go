package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

var now = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func validProfile() Profile {
	return Profile{
		Username:   "jdoe",
		Email:      "JDoe@Company.com",
		FullName:   "john doe",
		Role:       authorization.RoleUser,
		Department: "Finance",
	}
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(validProfile(), "hash", now)
	require.NoError(t, err)

	assert.Equal(t, "jdoe", u.Username())
	assert.Equal(t, "jdoe@company.com", u.Email())
	assert.Equal(t, "John Doe", u.DisplayName())
	assert.False(t, u.IsStaff())
	assert.Equal(t, authorization.Actor{UserID: 0, Role: authorization.RoleUser}, u.Actor())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
		hash   string
	}{
		{"missing username", func(p *Profile) { p.Username = " " }, "hash"},
		{"bad email", func(p *Profile) { p.Email = "nope" }, "hash"},
		{"missing full name", func(p *Profile) { p.FullName = "" }, "hash"},
		{"unknown role", func(p *Profile) { p.Role = "root" }, "hash"},
		{"missing password", func(p *Profile) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			_, err := NewUser(p, tt.hash, now)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUser_UpdateProfile_AllOrNothing(t *testing.T) {
	u, err := NewUser(validProfile(), "hash", now)
	require.NoError(t, err)

	err = u.UpdateProfile("invalid", "New Name", "IT")
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "john doe", u.FullName())
	assert.Equal(t, "Finance", u.Department())

	require.NoError(t, u.UpdateProfile("new@company.com", "New Name", "IT"))
	assert.Equal(t, "new@company.com", u.Email())
	assert.Equal(t, "IT", u.Department())
	assert.Equal(t, authorization.RoleUser, u.Role())
}

func TestUser_UpdateByAdmin(t *testing.T) {
	u, err := NewUser(validProfile(), "hash", now)
	require.NoError(t, err)

	p := validProfile()
	p.Role = authorization.RoleITStaff
	p.Username = "jdoe2"
	require.NoError(t, u.UpdateByAdmin(p))
	assert.True(t, u.IsStaff())
	assert.Equal(t, "jdoe2", u.Username())
}
