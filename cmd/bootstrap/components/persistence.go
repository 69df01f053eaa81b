package components

import (
	"marketlink/internal/infra/db"
	"marketlink/internal/infra/readstore"
	"marketlink/internal/infra/uow"
	"marketlink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Writes go through the unit of work; tx-bound repositories are
		// built inside it, so only the read stores are wired here.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
