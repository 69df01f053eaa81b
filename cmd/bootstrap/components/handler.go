package components

import (
	"marketlink/internal/handler"
	"marketlink/internal/handler/api"
	"marketlink/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewRequestHandler,
		api.NewOfferHandler,
		api.NewPurchaseHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
