package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(username Username, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
