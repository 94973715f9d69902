package user

import (
	"strings"
	"time"

	"helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

type User struct {
	id           uint
	username     string
	passwordHash string
	email        valueobjects.Email
	fullName     valueobjects.FullName
	role         authorization.UserRole
	department   string
	createdAt    time.Time
}

// Profile holds the fields every account carries apart from credentials.
type Profile struct {
	Username   string
	Email      string
	FullName   string
	Role       authorization.UserRole
	Department string
}

func (p Profile) validate() (valueobjects.Email, valueobjects.FullName, error) {
	if strings.TrimSpace(p.Username) == "" {
		return valueobjects.Email{}, valueobjects.FullName{}, errors.NewValidationError("username is required")
	}
	email, err := valueobjects.NewEmail(p.Email)
	if err != nil {
		return valueobjects.Email{}, valueobjects.FullName{}, errors.NewValidationError(err.Error())
	}
	name, err := valueobjects.NewFullName(p.FullName)
	if err != nil {
		return valueobjects.Email{}, valueobjects.FullName{}, errors.NewValidationError(err.Error())
	}
	if !p.Role.IsValid() {
		return valueobjects.Email{}, valueobjects.FullName{}, errors.NewValidationError("invalid role", string(p.Role))
	}
	return email, name, nil
}

func NewUser(p Profile, passwordHash string, now time.Time) (*User, error) {
	email, name, err := p.validate()
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password is required")
	}
	return &User{
		username:     strings.TrimSpace(p.Username),
		passwordHash: passwordHash,
		email:        email,
		fullName:     name,
		role:         p.Role,
		department:   strings.TrimSpace(p.Department),
		createdAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence. Stored values are trusted
// apart from the shape checks the value objects apply.
func ReconstructUser(id uint, p Profile, passwordHash string, createdAt time.Time) (*User, error) {
	email, name, err := p.validate()
	if err != nil {
		return nil, err
	}
	return &User{
		id:           id,
		username:     p.Username,
		passwordHash: passwordHash,
		email:        email,
		fullName:     name,
		role:         p.Role,
		department:   p.Department,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Email() string                { return u.email.String() }
func (u *User) FullName() string             { return u.fullName.String() }
func (u *User) DisplayName() string          { return u.fullName.DisplayName() }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Department() string           { return u.department }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) IsStaff() bool                { return u.role.IsStaff() }

func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) Actor() authorization.Actor {
	return authorization.Actor{UserID: u.id, Role: u.role}
}

func (u *User) Profile() Profile {
	return Profile{
		Username:   u.username,
		Email:      u.email.String(),
		FullName:   u.fullName.String(),
		Role:       u.role,
		Department: u.department,
	}
}

// UpdateProfile applies self-service changes. Username and role are kept.
func (u *User) UpdateProfile(email, fullName, department string) error {
	p := u.Profile()
	p.Email = email
	p.FullName = fullName
	p.Department = department
	return u.apply(p)
}

// UpdateByAdmin replaces every profile field including role and username.
func (u *User) UpdateByAdmin(p Profile) error {
	return u.apply(p)
}

func (u *User) apply(p Profile) error {
	email, name, err := p.validate()
	if err != nil {
		return err
	}
	u.username = strings.TrimSpace(p.Username)
	u.email = email
	u.fullName = name
	u.role = p.Role
	u.department = strings.TrimSpace(p.Department)
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return errors.NewValidationError("password is required")
	}
	u.passwordHash = hash
	return nil
}
