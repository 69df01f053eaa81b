package repository

import (
	"context"
	"time"

	"marketlink/internal/domain/product"
	"marketlink/internal/infra"
	"marketlink/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

func (r *ProductRepository) Create(ctx context.Context, item *product.CatalogItem) error {
	const query = `
		INSERT INTO products (id, name, price, quantity, location, image_url, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		item.ID(), item.Name(), item.Price(), item.Quantity(),
		item.Location(), item.ImageURL(), item.OwnerID(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create catalog item", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.CatalogItem, error) {
	const query = `
		SELECT id, name, price, quantity, location, image_url, owner_id, created_at
		FROM products
		WHERE id = $1`

	var (
		itemID    uuid.UUID
		name      string
		price     decimal.Decimal
		quantity  int32
		location  string
		imageURL  *string
		ownerID   uuid.UUID
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&itemID, &name, &price, &quantity, &location, &imageURL, &ownerID, &createdAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find catalog item", err)
	}

	return product.ReconstructCatalogItem(itemID, name, price, quantity, location, imageURL, ownerID, createdAt), nil
}

func (r *ProductRepository) Update(ctx context.Context, item *product.CatalogItem) (int64, error) {
	const query = `
		UPDATE products
		SET name = $2, price = $3, quantity = $4, location = $5, image_url = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		item.ID(), item.Name(), item.Price(), item.Quantity(), item.Location(), item.ImageURL(),
	)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to update catalog item", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `DELETE FROM products WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to delete catalog item", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int32) (int64, error) {
	const query = `
		UPDATE products
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2`

	tag, err := r.db.Exec(ctx, query, id, qty)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to decrement stock", err)
	}
	return tag.RowsAffected(), nil
}
