package bootstrap

import (
	"marketlink/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
