package authorization

import "fmt"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleITStaff UserRole = "it_staff"
	RoleUser    UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role works tickets: admins and IT staff.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleITStaff
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleITStaff, RoleUser:
		return true
	}
	return false
}

func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   UserRole
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
