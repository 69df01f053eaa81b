package api

import (
	"errors"
	"net/http"

	reqdto "marketlink/internal/handler/dto/request"
	resdto "marketlink/internal/handler/dto/response"
	"marketlink/internal/handler/httperr"
	"marketlink/internal/handler/middleware"
	"marketlink/internal/usecase/commands"
	"marketlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	cmds commands.PurchaseCommands
	q    queries.OrderQueries
}

func NewPurchaseHandler(cmds commands.PurchaseCommands, q queries.OrderQueries) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds, q: q}
}

// @Summary Purchase product
// @Description Buy a catalog item; stock is decremented and an invoice snapshot recorded atomically
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /purchase [post]
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Purchase(c.Request.Context(), req, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, commands.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Not enough stock available", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Purchase failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary List own orders
// @Description List the buyer's past purchases
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /purchase/my-orders [get]
func (h *PurchaseHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), buyerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Get invoice
// @Description Get the invoice snapshot for an order (purchasing buyer or admin)
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /purchase/invoice/{orderId} [get]
func (h *PurchaseHandler) Invoice(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.Invoice(c.Request.Context(), orderID, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, queries.ErrOrderAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invoice", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}
