package readstore

import (
	"context"

	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewColumns = `
	r.id, r.buyer_id, u.username, r.product_name, r.description, r.quantity,
	r.urgency, r.status, r.accepted_offer_id, r.created_at`

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var v queries.RequestView
	err := row.Scan(
		&v.ID, &v.BuyerID, &v.BuyerUsername, &v.ProductName, &v.Description,
		&v.Quantity, &v.Urgency, &v.Status, &v.AcceptedOfferID, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const query = `
		SELECT ` + requestViewColumns + `
		FROM product_requests r
		JOIN users u ON u.id = r.buyer_id
		WHERE r.id = $1`

	view, err := scanRequestView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find product request", err)
	}
	return view, nil
}

func (r *RequestReadStore) FindAll(ctx context.Context) ([]*queries.RequestView, error) {
	const query = `
		SELECT ` + requestViewColumns + `
		FROM product_requests r
		JOIN users u ON u.id = r.buyer_id
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list product requests", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

func (r *RequestReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.RequestView, error) {
	const query = `
		SELECT ` + requestViewColumns + `
		FROM product_requests r
		JOIN users u ON u.id = r.buyer_id
		WHERE r.status = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list product requests by status", err)
	}
	defer rows.Close()

	return collectRequestViews(rows)
}

// FindByBuyer joins the accepted offer and the winning seller's identity
// when the request has been fulfilled.
func (r *RequestReadStore) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*queries.BuyerRequestView, error) {
	const query = `
		SELECT ` + requestViewColumns + `,
			o.id, su.username, o.quantity, o.price, o.location
		FROM product_requests r
		JOIN users u ON u.id = r.buyer_id
		LEFT JOIN seller_offers o ON o.id = r.accepted_offer_id
		LEFT JOIN users su ON su.id = o.seller_id
		WHERE r.buyer_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list buyer requests", err)
	}
	defer rows.Close()

	views := make([]*queries.BuyerRequestView, 0)
	for rows.Next() {
		var (
			v              queries.BuyerRequestView
			offerID        *uuid.UUID
			sellerUsername *string
			offerQuantity  *int32
			offerPrice     *decimal.Decimal
			offerLocation  *string
		)
		err := rows.Scan(
			&v.ID, &v.BuyerID, &v.BuyerUsername, &v.ProductName, &v.Description,
			&v.Quantity, &v.Urgency, &v.Status, &v.AcceptedOfferID, &v.CreatedAt,
			&offerID, &sellerUsername, &offerQuantity, &offerPrice, &offerLocation,
		)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan buyer request row", err)
		}
		if offerID != nil {
			v.AcceptedOffer = &queries.AcceptedOfferView{
				OfferID:        *offerID,
				SellerUsername: *sellerUsername,
				Quantity:       *offerQuantity,
				Price:          *offerPrice,
				Location:       *offerLocation,
			}
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate buyer request rows", err)
	}
	return views, nil
}

func collectRequestViews(rows pgx.Rows) ([]*queries.RequestView, error) {
	views := make([]*queries.RequestView, 0)
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan product request row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate product request rows", err)
	}
	return views, nil
}
