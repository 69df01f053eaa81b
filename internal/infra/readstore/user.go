package readstore

import (
	"context"

	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, username, role
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Username, &view.Role)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by id", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, username, role, password_hash
		FROM users
		WHERE username = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, username).Scan(&view.ID, &view.Username, &view.Role, &hash)
	if err != nil {
		return nil, "", infra.ClassifyPgErr("failed to find user by username", err)
	}
	return &view, hash, nil
}
