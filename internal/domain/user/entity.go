package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator of the rental back office. Credentials live with the
// auth service; this side only tracks identity and role.
type User struct {
	id        uuid.UUID
	email     Email
	name      string
	role      Role
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(email Email, name string, role Role) *User {
	return &User{
		id:       uuid.New(),
		email:    email,
		name:     name,
		role:     role,
		isActive: true,
	}
}

func ReconstructUser(id uuid.UUID, email Email, name string, role Role, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) Can(p Permission) bool {
	return u.isActive && u.role.Can(p)
}

// Permissions is empty for inactive users.
func (u *User) Permissions() []Permission {
	if !u.isActive {
		return nil
	}
	return u.role.Permissions()
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
