package queries

import (
	"context"
	"time"

	"marketlink/internal/domain/user"
	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

type OrderView struct {
	OrderID         uuid.UUID       `json:"order_id"`
	ProductName     string          `json:"product_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int32           `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	DeliveryAddress string          `json:"delivery_address"`
	PurchasedAt     time.Time       `json:"purchased_at"`
}

type InvoiceView struct {
	InvoiceID       uuid.UUID       `json:"invoice_id"`
	BuyerID         uuid.UUID       `json:"-"`
	BuyerUsername   string          `json:"buyer"`
	ProductName     string          `json:"product_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int32           `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	DeliveryAddress string          `json:"delivery_address"`
	PurchasedAt     time.Time       `json:"purchased_at"`
}

type OrderQueries interface {
	ListMine(ctx context.Context, buyerID uuid.UUID) ([]*OrderView, error)
	// Invoice is visible to the purchasing buyer and to admins.
	Invoice(ctx context.Context, orderID, actorID uuid.UUID, role user.Role) (*InvoiceView, error)
}

type OrderReadStore interface {
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*OrderView, error)
	FindInvoiceByID(ctx context.Context, orderID uuid.UUID) (*InvoiceView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, buyerID uuid.UUID) ([]*OrderView, error) {
	return q.readStore.FindByBuyer(ctx, buyerID)
}

func (q *orderQueriesImpl) Invoice(ctx context.Context, orderID, actorID uuid.UUID, role user.Role) (*InvoiceView, error) {
	view, err := q.readStore.FindInvoiceByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if role != user.RoleAdmin && view.BuyerID != actorID {
		return nil, ErrOrderAccess
	}
	return view, nil
}
