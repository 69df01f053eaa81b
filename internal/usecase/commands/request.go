package commands

import (
	"context"

	"marketlink/internal/domain/request"
	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"
	"marketlink/internal/usecase/queries"
	"marketlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound   = errs.New("request not found")
	ErrRequestNotPending = errs.New("request is not pending")
	ErrDomainValidation  = errs.New("domain validation error")
)

type RequestCommands interface {
	Create(ctx context.Context, req reqdto.CreateRequestRequest, buyerID uuid.UUID) (*queries.RequestView, error)
	Broadcast(ctx context.Context, requestID uuid.UUID) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	uow            shared.UnitOfWork
	requestQueries queries.RequestQueries
}

func NewRequestCommands(uow shared.UnitOfWork, requestQueries queries.RequestQueries) RequestCommands {
	return &requestCommandsImpl{
		uow:            uow,
		requestQueries: requestQueries,
	}
}

func (c *requestCommandsImpl) Create(ctx context.Context, req reqdto.CreateRequestRequest, buyerID uuid.UUID) (*queries.RequestView, error) {
	urgency, err := request.NewUrgency(req.Urgency)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := request.NewProductRequest(buyerID, req.ProductName, req.Description, req.Quantity, urgency)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Requests().Create(ctx, entity)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create product request")
	}

	return c.requestQueries.GetByID(ctx, entity.ID())
}

// Broadcast moves a pending request to Notified so sellers can see it and
// start submitting offers.
func (c *requestCommandsImpl) Broadcast(ctx context.Context, requestID uuid.UUID) (*queries.RequestView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Requests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return errs.Wrap(err, "failed to load request")
		}

		if err := entity.Broadcast(); err != nil {
			return errs.Mark(err, ErrRequestNotPending)
		}

		rows, err := tx.Requests().UpdateStatus(ctx, requestID, request.StatusPending, request.StatusNotified)
		if err != nil {
			return errs.Wrap(err, "failed to update request status")
		}
		if rows == 0 {
			return ErrRequestNotPending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.requestQueries.GetByID(ctx, requestID)
}
