package repository

import (
	"context"
	"time"

	"marketlink/internal/domain/request"
	"marketlink/internal/infra"
	"marketlink/internal/infra/db"

	"github.com/google/uuid"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.ProductRequest) error {
	const query = `
		INSERT INTO product_requests (id, buyer_id, product_name, description, quantity, urgency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		req.ID(), req.BuyerID(), req.ProductName(), req.Description(),
		req.Quantity(), req.Urgency().String(), req.Status().String(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create product request", err)
	}
	return nil
}

func (r *RequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*request.ProductRequest, error) {
	const query = `
		SELECT id, buyer_id, product_name, description, quantity, urgency, status, accepted_offer_id, created_at
		FROM product_requests
		WHERE id = $1
		FOR UPDATE`

	var (
		reqID           uuid.UUID
		buyerID         uuid.UUID
		productName     string
		description     string
		quantity        int32
		urgency         string
		status          string
		acceptedOfferID *uuid.UUID
		createdAt       time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reqID, &buyerID, &productName, &description, &quantity, &urgency, &status, &acceptedOfferID, &createdAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find product request", err)
	}

	return request.ReconstructProductRequest(
		reqID, buyerID, productName, description, quantity,
		request.Urgency(urgency), request.Status(status), acceptedOfferID, createdAt,
	), nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to request.Status) (int64, error) {
	const query = `
		UPDATE product_requests
		SET status = $3
		WHERE id = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to update request status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RequestRepository) Fulfill(ctx context.Context, id, offerID uuid.UUID) (int64, error) {
	const query = `
		UPDATE product_requests
		SET status = $3, accepted_offer_id = $2
		WHERE id = $1 AND status = $4 AND accepted_offer_id IS NULL`

	tag, err := r.db.Exec(ctx, query, id, offerID, request.StatusFulfilled.String(), request.StatusNotified.String())
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to fulfill request", err)
	}
	return tag.RowsAffected(), nil
}
