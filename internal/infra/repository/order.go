package repository

import (
	"context"
	"encoding/json"

	"marketlink/internal/domain/order"
	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	invoice, err := json.Marshal(o.Invoice())
	if err != nil {
		return infra.WrapRepoErr("failed to encode invoice snapshot", err)
	}

	const query = `
		INSERT INTO orders (id, product_id, buyer_id, quantity, delivery_address, total_price, invoice, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.Exec(ctx, query,
		o.ID(), o.ProductID(), o.BuyerID(), o.Quantity(),
		o.DeliveryAddress(), o.TotalPrice(), invoice, o.PurchasedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create order", err)
	}
	return nil
}
