package commands

import (
	"context"

	"marketlink/internal/domain/offer"
	"marketlink/internal/domain/product"
	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"
	"marketlink/internal/usecase/queries"
	"marketlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOfferNotFound             = errs.New("offer not found")
	ErrDuplicateOffer            = errs.New("seller already has an offer on this request")
	ErrRequestNotAcceptingOffers = errs.New("request is not accepting offers")
	ErrOfferConflict             = errs.New("offer was settled concurrently")
)

// AcceptOfferResult reports everything the acceptance transaction decided:
// the fulfilled request, the catalog item minted from the winning offer and
// how many competing offers were rejected alongside it.
type AcceptOfferResult struct {
	OfferID          uuid.UUID
	RequestID        uuid.UUID
	ProductID        uuid.UUID
	RejectedSiblings int64
}

type OfferCommands interface {
	Submit(ctx context.Context, req reqdto.SubmitOfferRequest, requestID, sellerID uuid.UUID) (*queries.OfferView, error)
	Accept(ctx context.Context, offerID uuid.UUID) (*AcceptOfferResult, error)
}

type offerCommandsImpl struct {
	uow          shared.UnitOfWork
	offerQueries queries.OfferQueries
}

func NewOfferCommands(uow shared.UnitOfWork, offerQueries queries.OfferQueries) OfferCommands {
	return &offerCommandsImpl{
		uow:          uow,
		offerQueries: offerQueries,
	}
}

func (c *offerCommandsImpl) Submit(ctx context.Context, req reqdto.SubmitOfferRequest, requestID, sellerID uuid.UUID) (*queries.OfferView, error) {
	entity, err := offer.NewSellerOffer(
		sellerID,
		requestID,
		req.Quantity,
		decimal.NewFromFloat(req.Price),
		req.Message,
		req.Location,
		req.ImageURL,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		target, err := tx.Requests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return errs.Wrap(err, "failed to load request")
		}

		if !target.AcceptsOffers() {
			return ErrRequestNotAcceptingOffers
		}

		exists, err := tx.Offers().ExistsForSellerAndRequest(ctx, sellerID, requestID)
		if err != nil {
			return errs.Wrap(err, "failed to check existing offer")
		}
		if exists {
			return ErrDuplicateOffer
		}

		return tx.Offers().Create(ctx, entity)
	})
	if err != nil {
		// The partial unique index backs the existence check up under
		// concurrent submissions.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateOffer
		}
		return nil, err
	}

	return c.offerQueries.GetByID(ctx, entity.ID())
}

// Accept settles a request in a single transaction: the chosen offer is
// accepted, every other pending offer on the request is rejected, the
// request is fulfilled and a catalog item is created from the winning
// terms. Nothing is visible until all of it commits.
func (c *offerCommandsImpl) Accept(ctx context.Context, offerID uuid.UUID) (*AcceptOfferResult, error) {
	var result AcceptOfferResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won, err := tx.Offers().FindByIDForUpdate(ctx, offerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return errs.Wrap(err, "failed to load offer")
		}

		target, err := tx.Requests().FindByIDForUpdate(ctx, won.RequestID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return errs.Wrap(err, "failed to load request")
		}

		if err := won.Accept(); err != nil {
			return errs.Mark(err, ErrOfferConflict)
		}
		if err := target.Fulfill(won.ID()); err != nil {
			return errs.Mark(err, ErrRequestNotAcceptingOffers)
		}

		rejected, err := tx.Offers().RejectPendingSiblings(ctx, target.ID(), won.ID())
		if err != nil {
			return errs.Wrap(err, "failed to reject competing offers")
		}

		rows, err := tx.Offers().UpdateStatus(ctx, won.ID(), offer.StatusPending, offer.StatusAccepted)
		if err != nil {
			return errs.Wrap(err, "failed to accept offer")
		}
		if rows == 0 {
			return ErrOfferConflict
		}

		rows, err = tx.Requests().Fulfill(ctx, target.ID(), won.ID())
		if err != nil {
			return errs.Wrap(err, "failed to fulfill request")
		}
		if rows == 0 {
			return ErrRequestNotAcceptingOffers
		}

		item, err := product.FromAcceptedOffer(target, won)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Products().Create(ctx, item); err != nil {
			return errs.Wrap(err, "failed to create catalog item")
		}

		result = AcceptOfferResult{
			OfferID:          won.ID(),
			RequestID:        target.ID(),
			ProductID:        item.ID(),
			RejectedSiblings: rejected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
