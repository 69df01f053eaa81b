package repository

import (
	"context"
	"time"

	"marketlink/internal/domain/offer"
	"marketlink/internal/infra"
	"marketlink/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(dbtx db.DBTX) *OfferRepository {
	return &OfferRepository{db: dbtx}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.SellerOffer) error {
	const query = `
		INSERT INTO seller_offers (id, seller_id, request_id, quantity, price, message, location, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		o.ID(), o.SellerID(), o.RequestID(), o.Quantity(), o.Price(),
		o.Message(), o.Location(), o.ImageURL(), o.Status().String(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create seller offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.SellerOffer, error) {
	const query = `
		SELECT id, seller_id, request_id, quantity, price, message, location, image_url, status, offered_at
		FROM seller_offers
		WHERE id = $1
		FOR UPDATE`

	var (
		offerID   uuid.UUID
		sellerID  uuid.UUID
		requestID uuid.UUID
		quantity  int32
		price     decimal.Decimal
		message   string
		location  string
		imageURL  *string
		status    string
		offeredAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offerID, &sellerID, &requestID, &quantity, &price, &message, &location, &imageURL, &status, &offeredAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find seller offer", err)
	}

	return offer.ReconstructSellerOffer(
		offerID, sellerID, requestID, quantity, price, message, location, imageURL,
		offer.Status(status), offeredAt,
	), nil
}

func (r *OfferRepository) ExistsForSellerAndRequest(ctx context.Context, sellerID, requestID uuid.UUID) (bool, error) {
	// Rejected offers do not block a new submission, mirroring the
	// partial unique index on (seller_id, request_id).
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM seller_offers
			WHERE seller_id = $1 AND request_id = $2 AND status <> $3
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, sellerID, requestID, offer.StatusRejected.String()).Scan(&exists); err != nil {
		return false, infra.ClassifyPgErr("failed to check offer existence", err)
	}
	return exists, nil
}

func (r *OfferRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to offer.Status) (int64, error) {
	const query = `
		UPDATE seller_offers
		SET status = $3
		WHERE id = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to update offer status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OfferRepository) RejectPendingSiblings(ctx context.Context, requestID, keepID uuid.UUID) (int64, error) {
	const query = `
		UPDATE seller_offers
		SET status = $3
		WHERE request_id = $1 AND id <> $2 AND status = $4`

	tag, err := r.db.Exec(ctx, query, requestID, keepID, offer.StatusRejected.String(), offer.StatusPending.String())
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to reject sibling offers", err)
	}
	return tag.RowsAffected(), nil
}
