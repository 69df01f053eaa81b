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

type RequestHandler struct {
	cmds   commands.RequestCommands
	q      queries.RequestQueries
	offerQ queries.OfferQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries, offerQ queries.OfferQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q, offerQ: offerQ}
}

// @Summary Create product request
// @Description Submit a demand record for a product the buyer wants sourced
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRequestRequest true "Create request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, buyerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create request failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List all requests
// @Description List every product request regardless of status
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list requests", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Broadcast request
// @Description Make a pending request visible to sellers
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/broadcast [post]
func (h *RequestHandler) Broadcast(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.cmds.Broadcast(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		case errors.Is(err, commands.ErrRequestNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request is not pending", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Broadcast failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List notified requests
// @Description List broadcast requests open for offers, marking ones the seller already offered on
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SellerRequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests/notified [get]
func (h *RequestHandler) ListNotified(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListNotified(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list requests", nil)
		return
	}

	offeredIDs, err := h.offerQ.ListRequestIDsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list requests", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSellerRequestViews(views, offeredIDs))
}

// @Summary List own requests
// @Description List the buyer's requests with the accepted offer once settled
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BuyerRequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests/my-requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), buyerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list requests", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBuyerRequestViews(views))
}
