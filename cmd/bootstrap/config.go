package bootstrap

import (
	"marketlink/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the marketplace environment (server, database, JWT,
// CORS, logging) once at startup; a missing required variable fails the
// fx boot instead of surfacing later mid-request.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
