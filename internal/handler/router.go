package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketlink/internal/domain/user"
	"marketlink/internal/handler/api"
	"marketlink/internal/handler/middleware"
	"marketlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	productHandler *api.ProductHandler,
	requestHandler *api.RequestHandler,
	offerHandler *api.OfferHandler,
	purchaseHandler *api.PurchaseHandler,
	statsHandler *api.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, productHandler, requestHandler, offerHandler, purchaseHandler, statsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	productHandler *api.ProductHandler,
	requestHandler *api.RequestHandler,
	offerHandler *api.OfferHandler,
	purchaseHandler *api.PurchaseHandler,
	statsHandler *api.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			// Only sellers create catalog items; admins moderate existing rows.
			sellerOrAdmin := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller, user.RoleAdmin)}
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: productHandler.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPut, Path: "/:id", Handler: productHandler.Update, Mw: sellerOrAdmin},
				{Method: http.MethodDelete, Path: "/:id", Handler: productHandler.Delete, Mw: sellerOrAdmin},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleBuyer)}},
				{Method: http.MethodGet, Path: "", Handler: requestHandler.List, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/broadcast", Handler: requestHandler.Broadcast, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/notified", Handler: requestHandler.ListNotified, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodGet, Path: "/my-requests", Handler: requestHandler.ListMine, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleBuyer)}},
			})
		}

		offers := apiGroup.Group("/offers")
		offers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(offers, []route{
				{Method: http.MethodPost, Path: "/:id", Handler: offerHandler.Submit, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodGet, Path: "/request/:id", Handler: offerHandler.ListForRequest, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: offerHandler.Accept, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/seller", Handler: offerHandler.ListMine, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodGet, Path: "/seller/my-offers", Handler: offerHandler.ListMineRequestIDs, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
			})
		}

		buyerOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleBuyer)}
		purchases := apiGroup.Group("/purchase")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "", Handler: purchaseHandler.Purchase, Mw: buyerOnly},
				{Method: http.MethodGet, Path: "/my-orders", Handler: purchaseHandler.ListMine, Mw: buyerOnly},
				{Method: http.MethodGet, Path: "/invoice/:orderId", Handler: purchaseHandler.Invoice, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleBuyer, user.RoleAdmin)}},
			})
		}

		stats := apiGroup.Group("/stats")
		stats.Use(authMiddleware.RequireAuth())
		{
			addRoutes(stats, []route{
				{Method: http.MethodGet, Path: "", Handler: statsHandler.Overview, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
