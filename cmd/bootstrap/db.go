package bootstrap

import (
	"context"

	"marketlink/internal/infra/db"
	"marketlink/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pgx pool (with the decimal codec registered for price
// columns) and closes it on fx shutdown.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
