package commands

import (
	"context"
	"errors"

	"marketlink/internal/domain/order"
	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/infra"
	"marketlink/internal/pkg/clock"
	"marketlink/internal/pkg/errs"
	"marketlink/internal/usecase/queries"
	"marketlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInsufficientStock = errs.New("not enough stock available")

type PurchaseCommands interface {
	Purchase(ctx context.Context, req reqdto.PurchaseRequest, buyerID uuid.UUID) (*queries.OrderView, error)
}

type purchaseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurchaseCommands(uow shared.UnitOfWork, clock clock.Clock) PurchaseCommands {
	return &purchaseCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Purchase decrements stock and records the order with its invoice snapshot
// in one transaction, so concurrent buyers can never oversell an item.
func (c *purchaseCommandsImpl) Purchase(ctx context.Context, req reqdto.PurchaseRequest, buyerID uuid.UUID) (*queries.OrderView, error) {
	var placed *order.Order

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Products().FindByID(ctx, req.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return errs.Wrap(err, "failed to load product")
		}

		placed, err = order.NewOrder(item, buyerID, req.Quantity, req.DeliveryAddress, c.clock.Now())
		if err != nil {
			if errors.Is(err, order.ErrInsufficientStock) {
				return ErrInsufficientStock
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		rows, err := tx.Products().DecrementStock(ctx, item.ID(), req.Quantity)
		if err != nil {
			return errs.Wrap(err, "failed to decrement stock")
		}
		if rows == 0 {
			// Someone else bought the remaining units between the read
			// and the decrement.
			return ErrInsufficientStock
		}

		return tx.Orders().Create(ctx, placed)
	})
	if err != nil {
		return nil, err
	}

	inv := placed.Invoice()
	line := inv.Items[0]
	return &queries.OrderView{
		OrderID:         placed.ID(),
		ProductName:     line.ProductName,
		UnitPrice:       line.UnitPrice,
		Quantity:        placed.Quantity(),
		TotalPrice:      placed.TotalPrice(),
		DeliveryAddress: placed.DeliveryAddress(),
		PurchasedAt:     placed.PurchasedAt(),
	}, nil
}
