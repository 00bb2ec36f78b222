package user

import (
	"errors"
	"strings"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is keyed by a unique email. The role is changed only by an admin role
// update or by rider approval.
type User struct {
	id          kernel.UUID
	email       kernel.Email
	name        string
	photoURL    string
	role        Role
	createdAt   time.Time
	lastLoginAt time.Time
	guard       guard.ConstructorGuard
}

// NewUser registers a user at signup. Signup never grants a privileged role.
func NewUser(id kernel.UUID, email kernel.Email, name, photoURL string, now time.Time) (*User, error) {
	if err := errors.Join(id.Validate(), email.Validate()); err != nil {
		return nil, err
	}

	return &User{
		id:          id,
		email:       email,
		name:        strings.TrimSpace(name),
		photoURL:    strings.TrimSpace(photoURL),
		role:        RoleUser,
		createdAt:   now.UTC(),
		lastLoginAt: now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the full persisted state of a user.
type Snapshot struct {
	ID          kernel.UUID
	Email       kernel.Email
	Name        string
	PhotoURL    string
	Role        Role
	CreatedAt   time.Time
	LastLoginAt time.Time
}

func RestoreUser(s Snapshot) (*User, error) {
	if err := errors.Join(s.ID.Validate(), s.Email.Validate(), s.Role.Validate()); err != nil {
		return nil, err
	}

	return &User{
		id:          s.ID,
		email:       s.Email,
		name:        s.Name,
		photoURL:    s.PhotoURL,
		role:        s.Role,
		createdAt:   s.CreatedAt,
		lastLoginAt: s.LastLoginAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:          u.id,
		Email:       u.email,
		Name:        u.name,
		PhotoURL:    u.photoURL,
		Role:        u.role,
		CreatedAt:   u.createdAt,
		LastLoginAt: u.lastLoginAt,
	}
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID     { return u.id }
func (u *User) Email() kernel.Email { return u.email }
func (u *User) Name() string        { return u.name }
func (u *User) Role() Role          { return u.role }

// ChangeRole sets the role. It reports whether anything changed.
func (u *User) ChangeRole(role Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}
	if u.role == role {
		return false, nil
	}
	u.role = role
	return true, nil
}

// PromoteToRider is applied when the user's rider application is approved.
// Admins keep their role.
func (u *User) PromoteToRider() bool {
	if u.role == RoleAdmin || u.role == RoleRider {
		return false
	}
	u.role = RoleRider
	return true
}
