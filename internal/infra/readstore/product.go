package readstore

import (
	"context"

	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const productViewColumns = `
	p.id, p.name, p.price, p.quantity, p.location, p.image_url, p.owner_id, u.username, p.created_at`

func scanProductView(row pgx.Row) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(
		&v.ID, &v.Name, &v.Price, &v.Quantity, &v.Location,
		&v.ImageURL, &v.OwnerID, &v.OwnerUsername, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	const query = `
		SELECT ` + productViewColumns + `
		FROM products p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1`

	view, err := scanProductView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find product", err)
	}
	return view, nil
}

func (r *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	const query = `
		SELECT ` + productViewColumns + `
		FROM products p
		JOIN users u ON u.id = p.owner_id
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list products", err)
	}
	defer rows.Close()

	return collectProductViews(rows)
}

func (r *ProductReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ProductView, error) {
	const query = `
		SELECT ` + productViewColumns + `
		FROM products p
		JOIN users u ON u.id = p.owner_id
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list products by owner", err)
	}
	defer rows.Close()

	return collectProductViews(rows)
}

func collectProductViews(rows pgx.Rows) ([]*queries.ProductView, error) {
	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan product row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate product rows", err)
	}
	return views, nil
}
