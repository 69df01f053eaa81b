package commands

import (
	"context"

	"marketlink/internal/domain/product"
	"marketlink/internal/domain/user"
	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"
	"marketlink/internal/usecase/queries"
	"marketlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrNotProductOwner = errs.New("not the product owner")
)

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest, ownerID uuid.UUID) (*queries.ProductView, error)
	Update(ctx context.Context, req reqdto.UpdateProductRequest, productID, actorID uuid.UUID, actorRole user.Role) (*queries.ProductView, error)
	Delete(ctx context.Context, productID, actorID uuid.UUID, actorRole user.Role) error
}

type productCommandsImpl struct {
	uow            shared.UnitOfWork
	productQueries queries.ProductQueries
}

func NewProductCommands(uow shared.UnitOfWork, productQueries queries.ProductQueries) ProductCommands {
	return &productCommandsImpl{
		uow:            uow,
		productQueries: productQueries,
	}
}

func (c *productCommandsImpl) Create(ctx context.Context, req reqdto.CreateProductRequest, ownerID uuid.UUID) (*queries.ProductView, error) {
	item, err := product.NewCatalogItem(
		req.Name,
		decimal.NewFromFloat(req.Price),
		req.Quantity,
		req.Location,
		req.ImageURL,
		ownerID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Create(ctx, item)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create product")
	}

	return c.productQueries.GetByID(ctx, item.ID())
}

func (c *productCommandsImpl) Update(ctx context.Context, req reqdto.UpdateProductRequest, productID, actorID uuid.UUID, actorRole user.Role) (*queries.ProductView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := c.loadOwned(ctx, tx, productID, actorID, actorRole)
		if err != nil {
			return err
		}

		err = item.UpdateDetails(
			req.Name,
			decimal.NewFromFloat(req.Price),
			req.Quantity,
			req.Location,
			req.ImageURL,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		rows, err := tx.Products().Update(ctx, item)
		if err != nil {
			return errs.Wrap(err, "failed to update product")
		}
		if rows == 0 {
			return ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.productQueries.GetByID(ctx, productID)
}

func (c *productCommandsImpl) Delete(ctx context.Context, productID, actorID uuid.UUID, actorRole user.Role) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.loadOwned(ctx, tx, productID, actorID, actorRole); err != nil {
			return err
		}

		rows, err := tx.Products().Delete(ctx, productID)
		if err != nil {
			return errs.Wrap(err, "failed to delete product")
		}
		if rows == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

// loadOwned fetches the item and enforces the mutation rule: admins may
// touch anything, everyone else only their own listings.
func (c *productCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, productID, actorID uuid.UUID, actorRole user.Role) (*product.CatalogItem, error) {
	item, err := tx.Products().FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to load product")
	}

	if actorRole != user.RoleAdmin && !item.IsOwnedBy(actorID) {
		return nil, ErrNotProductOwner
	}
	return item, nil
}
