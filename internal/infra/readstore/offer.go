package readstore

import (
	"context"

	"marketlink/internal/infra"
	"marketlink/internal/infra/db"
	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

const offerViewColumns = `
	o.id, o.seller_id, u.username, o.request_id, o.quantity, o.price,
	o.message, o.location, o.image_url, o.status, o.offered_at`

func scanOfferView(row pgx.Row) (*queries.OfferView, error) {
	var v queries.OfferView
	err := row.Scan(
		&v.ID, &v.SellerID, &v.SellerUsername, &v.RequestID, &v.Quantity,
		&v.Price, &v.Message, &v.Location, &v.ImageURL, &v.Status, &v.OfferedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	const query = `
		SELECT ` + offerViewColumns + `
		FROM seller_offers o
		JOIN users u ON u.id = o.seller_id
		WHERE o.id = $1`

	view, err := scanOfferView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find offer", err)
	}
	return view, nil
}

func (r *OfferReadStore) FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.OfferView, error) {
	const query = `
		SELECT ` + offerViewColumns + `
		FROM seller_offers o
		JOIN users u ON u.id = o.seller_id
		WHERE o.request_id = $1
		ORDER BY o.offered_at ASC`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list offers for request", err)
	}
	defer rows.Close()

	views := make([]*queries.OfferView, 0)
	for rows.Next() {
		view, err := scanOfferView(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan offer row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate offer rows", err)
	}
	return views, nil
}

func (r *OfferReadStore) FindRequestIDsBySeller(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT request_id
		FROM seller_offers
		WHERE seller_id = $1`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list offered request ids", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan request id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate request ids", err)
	}
	return ids, nil
}

func (r *OfferReadStore) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*queries.SellerOfferDetail, error) {
	const query = `
		SELECT ` + offerViewColumns + `,
			pr.product_name, pr.status
		FROM seller_offers o
		JOIN users u ON u.id = o.seller_id
		JOIN product_requests pr ON pr.id = o.request_id
		WHERE o.seller_id = $1
		ORDER BY o.offered_at DESC`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list seller offers", err)
	}
	defer rows.Close()

	views := make([]*queries.SellerOfferDetail, 0)
	for rows.Next() {
		var v queries.SellerOfferDetail
		err := rows.Scan(
			&v.ID, &v.SellerID, &v.SellerUsername, &v.RequestID, &v.Quantity,
			&v.Price, &v.Message, &v.Location, &v.ImageURL, &v.Status, &v.OfferedAt,
			&v.RequestProductName, &v.RequestStatus,
		)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan seller offer row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate seller offer rows", err)
	}
	return views, nil
}
