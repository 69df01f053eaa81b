package readstore

import (
	"context"

	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*queries.OrderView, error) {
	const query = `
		SELECT o.id, p.name, p.price, o.quantity, o.total_price, o.delivery_address, o.purchased_at
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.buyer_id = $1
		ORDER BY o.purchased_at DESC`

	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list orders", err)
	}
	defer rows.Close()

	views := make([]*queries.OrderView, 0)
	for rows.Next() {
		var v queries.OrderView
		err := rows.Scan(
			&v.OrderID, &v.ProductName, &v.UnitPrice, &v.Quantity,
			&v.TotalPrice, &v.DeliveryAddress, &v.PurchasedAt,
		)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan order row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate order rows", err)
	}
	return views, nil
}

// FindInvoiceByID reads the billing fields from the invoice snapshot taken
// at purchase time, not from the live product row, so later catalog edits
// never change a past invoice.
func (r *OrderReadStore) FindInvoiceByID(ctx context.Context, orderID uuid.UUID) (*queries.InvoiceView, error) {
	const query = `
		SELECT o.id, o.buyer_id, u.username,
			o.invoice->'items'->0->>'product_name',
			(o.invoice->'items'->0->>'unit_price')::numeric,
			o.quantity, o.total_price, o.delivery_address, o.purchased_at
		FROM orders o
		JOIN users u ON u.id = o.buyer_id
		WHERE o.id = $1`

	var v queries.InvoiceView
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&v.InvoiceID, &v.BuyerID, &v.BuyerUsername, &v.ProductName,
		&v.UnitPrice, &v.Quantity, &v.TotalPrice, &v.DeliveryAddress, &v.PurchasedAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find invoice", err)
	}
	return &v, nil
}
