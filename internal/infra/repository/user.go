package repository

import (
	"context"

	"marketlink/internal/domain/user"
	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, u.ID(), u.Username().Value(), u.PasswordHash(), u.Role().String())
	if err != nil {
		return infra.ClassifyPgErr("failed to create user", err)
	}
	return nil
}
