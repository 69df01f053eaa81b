package order

import (
	"errors"
	"strings"
	"time"

	"marketlink/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveQty       = errors.New("purchase quantity must be positive")
	ErrEmptyDeliveryAddress = errors.New("delivery address is required")
	ErrInsufficientStock    = errors.New("not enough stock available")
)

// InvoiceLine is a single invoice position captured at purchase time.
type InvoiceLine struct {
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int32           `json:"quantity"`
	ItemTotal   decimal.Decimal `json:"item_total"`
}

// InvoiceSnapshot freezes the billing details at purchase time so later
// catalog mutations never change what the buyer was charged.
type InvoiceSnapshot struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Items       []InvoiceLine   `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Order is immutable once created.
type Order struct {
	id              uuid.UUID
	productID       uuid.UUID
	buyerID         uuid.UUID
	quantity        int32
	deliveryAddress string
	totalPrice      decimal.Decimal
	invoice         InvoiceSnapshot
	purchasedAt     time.Time
}

// NewOrder prices the purchase against the current catalog item and builds
// the embedded invoice snapshot. It does not touch stock; the caller commits
// the stock decrement and the order in one transaction.
func NewOrder(item *product.CatalogItem, buyerID uuid.UUID, quantity int32, deliveryAddress string, now time.Time) (*Order, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveQty
	}
	deliveryAddress = strings.TrimSpace(deliveryAddress)
	if deliveryAddress == "" {
		return nil, ErrEmptyDeliveryAddress
	}
	if item.Quantity() < quantity {
		return nil, ErrInsufficientStock
	}

	total := item.Price().Mul(decimal.NewFromInt32(quantity))

	return &Order{
		id:              uuid.New(),
		productID:       item.ID(),
		buyerID:         buyerID,
		quantity:        quantity,
		deliveryAddress: deliveryAddress,
		totalPrice:      total,
		invoice: InvoiceSnapshot{
			GeneratedAt: now,
			Items: []InvoiceLine{
				{
					ProductName: item.Name(),
					UnitPrice:   item.Price(),
					Quantity:    quantity,
					ItemTotal:   total,
				},
			},
			TotalAmount: total,
		},
		purchasedAt: now,
	}, nil
}

func ReconstructOrder(
	id, productID, buyerID uuid.UUID,
	quantity int32,
	deliveryAddress string,
	totalPrice decimal.Decimal,
	invoice InvoiceSnapshot,
	purchasedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		productID:       productID,
		buyerID:         buyerID,
		quantity:        quantity,
		deliveryAddress: deliveryAddress,
		totalPrice:      totalPrice,
		invoice:         invoice,
		purchasedAt:     purchasedAt,
	}
}

func (o *Order) ID() uuid.UUID               { return o.id }
func (o *Order) ProductID() uuid.UUID        { return o.productID }
func (o *Order) BuyerID() uuid.UUID          { return o.buyerID }
func (o *Order) Quantity() int32             { return o.quantity }
func (o *Order) DeliveryAddress() string     { return o.deliveryAddress }
func (o *Order) TotalPrice() decimal.Decimal { return o.totalPrice }
func (o *Order) Invoice() InvoiceSnapshot    { return o.invoice }
func (o *Order) PurchasedAt() time.Time      { return o.purchasedAt }
