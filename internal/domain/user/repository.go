package user

import "context"

type Stats struct {
	TicketsCreated  int64
	TicketsAssigned int64
	TimeEntries     int64
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// ExistsByUsername and ExistsByEmail skip the row with excludeID.
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	List(ctx context.Context) ([]*User, error)
	// ListStaff returns admins and IT staff ordered by full name.
	ListStaff(ctx context.Context) ([]*User, error)
	// HasReferences reports whether tickets, comments or time entries point
	// at the user.
	HasReferences(ctx context.Context, id uint) (bool, error)
	GetStats(ctx context.Context, ids []uint) (map[uint]Stats, error)
}

// PasswordHasher owns the stored credential format.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
