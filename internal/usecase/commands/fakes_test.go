//go:build unit

package commands_test

import (
	"context"
	"errors"

	"marketlink/internal/domain/offer"
	"marketlink/internal/domain/order"
	"marketlink/internal/domain/product"
	"marketlink/internal/domain/request"
	"marketlink/internal/domain/user"
	"marketlink/internal/infra"
	"marketlink/internal/usecase/queries"
	"marketlink/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is shared in-memory state behind the fake unit of work. The
// fakes mirror the persistence contract: guarded status updates report row
// counts and lookups surface repository error kinds.
type fakeStore struct {
	users    map[uuid.UUID]*user.User
	requests map[uuid.UUID]*request.ProductRequest
	offers   map[uuid.UUID]*offer.SellerOffer
	products map[uuid.UUID]*product.CatalogItem
	orders   map[uuid.UUID]*order.Order
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*user.User),
		requests: make(map[uuid.UUID]*request.ProductRequest),
		offers:   make(map[uuid.UUID]*offer.SellerOffer),
		products: make(map[uuid.UUID]*product.CatalogItem),
		orders:   make(map[uuid.UUID]*order.Order),
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{t.store} }
func (t *fakeTx) Requests() shared.RequestRepository { return &fakeRequestRepo{t.store} }
func (t *fakeTx) Offers() shared.OfferRepository     { return &fakeOfferRepo{t.store} }
func (t *fakeTx) Products() shared.ProductRepository { return &fakeProductRepo{t.store} }
func (t *fakeTx) Orders() shared.OrderRepository     { return &fakeOrderRepo{t.store} }

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.store.users {
		if existing.Username().Value() == u.Username().Value() {
			return infra.WrapRepoErr("duplicate username", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.store.users[u.ID()] = u
	return nil
}

type fakeRequestRepo struct {
	store *fakeStore
}

func (r *fakeRequestRepo) Create(_ context.Context, req *request.ProductRequest) error {
	r.store.requests[req.ID()] = req
	return nil
}

func (r *fakeRequestRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*request.ProductRequest, error) {
	req, ok := r.store.requests[id]
	if !ok {
		return nil, notFound("request not found")
	}
	return request.ReconstructProductRequest(
		req.ID(), req.BuyerID(), req.ProductName(), req.Description(),
		req.Quantity(), req.Urgency(), req.Status(), req.AcceptedOfferID(), req.CreatedAt(),
	), nil
}

func (r *fakeRequestRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to request.Status) (int64, error) {
	req, ok := r.store.requests[id]
	if !ok || req.Status() != from {
		return 0, nil
	}
	r.store.requests[id] = request.ReconstructProductRequest(
		req.ID(), req.BuyerID(), req.ProductName(), req.Description(),
		req.Quantity(), req.Urgency(), to, req.AcceptedOfferID(), req.CreatedAt(),
	)
	return 1, nil
}

func (r *fakeRequestRepo) Fulfill(_ context.Context, id, offerID uuid.UUID) (int64, error) {
	req, ok := r.store.requests[id]
	if !ok || req.Status() != request.StatusNotified || req.AcceptedOfferID() != nil {
		return 0, nil
	}
	r.store.requests[id] = request.ReconstructProductRequest(
		req.ID(), req.BuyerID(), req.ProductName(), req.Description(),
		req.Quantity(), req.Urgency(), request.StatusFulfilled, &offerID, req.CreatedAt(),
	)
	return 1, nil
}

type fakeOfferRepo struct {
	store *fakeStore
}

func (r *fakeOfferRepo) Create(_ context.Context, o *offer.SellerOffer) error {
	for _, existing := range r.store.offers {
		if existing.SellerID() == o.SellerID() && existing.RequestID() == o.RequestID() && existing.Status() != offer.StatusRejected {
			return infra.WrapRepoErr("duplicate offer", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.store.offers[o.ID()] = o
	return nil
}

func (r *fakeOfferRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*offer.SellerOffer, error) {
	o, ok := r.store.offers[id]
	if !ok {
		return nil, notFound("offer not found")
	}
	return offer.ReconstructSellerOffer(
		o.ID(), o.SellerID(), o.RequestID(), o.Quantity(), o.Price(),
		o.Message(), o.Location(), o.ImageURL(), o.Status(), o.OfferedAt(),
	), nil
}

func (r *fakeOfferRepo) ExistsForSellerAndRequest(_ context.Context, sellerID, requestID uuid.UUID) (bool, error) {
	for _, o := range r.store.offers {
		if o.SellerID() == sellerID && o.RequestID() == requestID && o.Status() != offer.StatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOfferRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to offer.Status) (int64, error) {
	o, ok := r.store.offers[id]
	if !ok || o.Status() != from {
		return 0, nil
	}
	r.store.offers[id] = offer.ReconstructSellerOffer(
		o.ID(), o.SellerID(), o.RequestID(), o.Quantity(), o.Price(),
		o.Message(), o.Location(), o.ImageURL(), to, o.OfferedAt(),
	)
	return 1, nil
}

func (r *fakeOfferRepo) RejectPendingSiblings(_ context.Context, requestID, keepID uuid.UUID) (int64, error) {
	var rejected int64
	for id, o := range r.store.offers {
		if o.RequestID() == requestID && id != keepID && o.Status() == offer.StatusPending {
			r.store.offers[id] = offer.ReconstructSellerOffer(
				o.ID(), o.SellerID(), o.RequestID(), o.Quantity(), o.Price(),
				o.Message(), o.Location(), o.ImageURL(), offer.StatusRejected, o.OfferedAt(),
			)
			rejected++
		}
	}
	return rejected, nil
}

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) Create(_ context.Context, item *product.CatalogItem) error {
	r.store.products[item.ID()] = item
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*product.CatalogItem, error) {
	item, ok := r.store.products[id]
	if !ok {
		return nil, notFound("product not found")
	}
	return product.ReconstructCatalogItem(
		item.ID(), item.Name(), item.Price(), item.Quantity(),
		item.Location(), item.ImageURL(), item.OwnerID(), item.CreatedAt(),
	), nil
}

func (r *fakeProductRepo) Update(_ context.Context, item *product.CatalogItem) (int64, error) {
	if _, ok := r.store.products[item.ID()]; !ok {
		return 0, nil
	}
	r.store.products[item.ID()] = item
	return 1, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.store.products[id]; !ok {
		return 0, nil
	}
	delete(r.store.products, id)
	return 1, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, id uuid.UUID, qty int32) (int64, error) {
	item, ok := r.store.products[id]
	if !ok || item.Quantity() < qty {
		return 0, nil
	}
	r.store.products[id] = product.ReconstructCatalogItem(
		item.ID(), item.Name(), item.Price(), item.Quantity()-qty,
		item.Location(), item.ImageURL(), item.OwnerID(), item.CreatedAt(),
	)
	return 1, nil
}

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.store.orders[o.ID()] = o
	return nil
}

// fakeRequestQueries serves the read-after-write lookups commands do once
// the transaction commits, straight from the fake store.
type fakeRequestQueries struct {
	store *fakeStore
}

func (q *fakeRequestQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	req, ok := q.store.requests[id]
	if !ok {
		return nil, queries.ErrRequestNotFound
	}
	return &queries.RequestView{
		ID:              req.ID(),
		BuyerID:         req.BuyerID(),
		ProductName:     req.ProductName(),
		Description:     req.Description(),
		Quantity:        req.Quantity(),
		Urgency:         req.Urgency().String(),
		Status:          req.Status().String(),
		AcceptedOfferID: req.AcceptedOfferID(),
		CreatedAt:       req.CreatedAt(),
	}, nil
}

func (q *fakeRequestQueries) ListAll(_ context.Context) ([]*queries.RequestView, error) {
	return nil, nil
}

func (q *fakeRequestQueries) ListNotified(_ context.Context) ([]*queries.RequestView, error) {
	return nil, nil
}

func (q *fakeRequestQueries) ListMine(_ context.Context, _ uuid.UUID) ([]*queries.BuyerRequestView, error) {
	return nil, nil
}

type fakeOfferQueries struct {
	store *fakeStore
}

func (q *fakeOfferQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.OfferView, error) {
	o, ok := q.store.offers[id]
	if !ok {
		return nil, queries.ErrOfferNotFound
	}
	return &queries.OfferView{
		ID:        o.ID(),
		SellerID:  o.SellerID(),
		RequestID: o.RequestID(),
		Quantity:  o.Quantity(),
		Price:     o.Price(),
		Message:   o.Message(),
		Location:  o.Location(),
		ImageURL:  o.ImageURL(),
		Status:    o.Status().String(),
		OfferedAt: o.OfferedAt(),
	}, nil
}

func (q *fakeOfferQueries) ListForRequest(_ context.Context, _ uuid.UUID) ([]*queries.OfferView, error) {
	return nil, nil
}

func (q *fakeOfferQueries) ListRequestIDsBySeller(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (q *fakeOfferQueries) ListBySeller(_ context.Context, _ uuid.UUID) ([]*queries.SellerOfferDetail, error) {
	return nil, nil
}

type fakeProductQueries struct {
	store *fakeStore
}

func (q *fakeProductQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ProductView, error) {
	item, ok := q.store.products[id]
	if !ok {
		return nil, queries.ErrProductNotFound
	}
	return &queries.ProductView{
		ID:        item.ID(),
		Name:      item.Name(),
		Price:     item.Price(),
		Quantity:  item.Quantity(),
		Location:  item.Location(),
		ImageURL:  item.ImageURL(),
		OwnerID:   item.OwnerID(),
		CreatedAt: item.CreatedAt(),
	}, nil
}

func (q *fakeProductQueries) ListForRole(_ context.Context, _ uuid.UUID, _ user.Role) ([]*queries.ProductView, error) {
	return nil, nil
}
