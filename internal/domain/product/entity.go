package product

import (
	"errors"
	"strings"
	"time"

	"marketlink/internal/domain/offer"
	"marketlink/internal/domain/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("product name is required")
	ErrNonPositivePrice = errors.New("product price must be positive")
	ErrNegativeQty      = errors.New("product quantity cannot be negative")
	ErrEmptyLocation    = errors.New("product location is required")
)

// CatalogItem is a purchasable inventory record. It is created either
// directly by a seller or synthesized from an accepted offer.
type CatalogItem struct {
	id        uuid.UUID
	name      string
	price     decimal.Decimal
	quantity  int32
	location  string
	imageURL  *string
	ownerID   uuid.UUID
	createdAt time.Time
}

func NewCatalogItem(name string, price decimal.Decimal, quantity int32, location string, imageURL *string, ownerID uuid.UUID) (*CatalogItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !price.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQty
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	return &CatalogItem{
		id:       uuid.New(),
		name:     name,
		price:    price,
		quantity: quantity,
		location: location,
		imageURL: imageURL,
		ownerID:  ownerID,
	}, nil
}

// FromAcceptedOffer materializes the catalog entry for a fulfilled request:
// name comes from the request, terms from the winning offer, ownership from
// the winning seller.
func FromAcceptedOffer(req *request.ProductRequest, won *offer.SellerOffer) (*CatalogItem, error) {
	return NewCatalogItem(req.ProductName(), won.Price(), won.Quantity(), won.Location(), won.ImageURL(), won.SellerID())
}

func ReconstructCatalogItem(
	id uuid.UUID,
	name string,
	price decimal.Decimal,
	quantity int32,
	location string,
	imageURL *string,
	ownerID uuid.UUID,
	createdAt time.Time,
) *CatalogItem {
	return &CatalogItem{
		id:        id,
		name:      name,
		price:     price,
		quantity:  quantity,
		location:  location,
		imageURL:  imageURL,
		ownerID:   ownerID,
		createdAt: createdAt,
	}
}

// UpdateDetails replaces the listing fields, applying the same validation
// rules as creation.
func (c *CatalogItem) UpdateDetails(name string, price decimal.Decimal, quantity int32, location string, imageURL *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if !price.IsPositive() {
		return ErrNonPositivePrice
	}
	if quantity < 0 {
		return ErrNegativeQty
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}

	c.name = name
	c.price = price
	c.quantity = quantity
	c.location = location
	c.imageURL = imageURL
	return nil
}

func (c *CatalogItem) IsOwnedBy(userID uuid.UUID) bool {
	return c.ownerID == userID
}

func (c *CatalogItem) ID() uuid.UUID          { return c.id }
func (c *CatalogItem) Name() string           { return c.name }
func (c *CatalogItem) Price() decimal.Decimal { return c.price }
func (c *CatalogItem) Quantity() int32        { return c.quantity }
func (c *CatalogItem) Location() string       { return c.location }
func (c *CatalogItem) ImageURL() *string      { return c.imageURL }
func (c *CatalogItem) OwnerID() uuid.UUID     { return c.ownerID }
func (c *CatalogItem) CreatedAt() time.Time   { return c.createdAt }
