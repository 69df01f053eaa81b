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

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Submit offer
// @Description Submit fulfillment terms against a broadcast request
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.SubmitOfferRequest true "Submit offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id} [post]
func (h *OfferHandler) Submit(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return
	}
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.SubmitOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), req, requestID, sellerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		case errors.Is(err, commands.ErrRequestNotAcceptingOffers):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request is not accepting offers", nil)
		case errors.Is(err, commands.ErrDuplicateOffer):
			httperr.AbortWithError(c, http.StatusConflict, err, "Offer already submitted for this request", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit offer failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOfferView(view))
}

// @Summary List offers for request
// @Description List every offer submitted against a request
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Router /offers/request/{id} [get]
func (h *OfferHandler) ListForRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return
	}

	views, err := h.q.ListForRequest(c.Request.Context(), requestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offers", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}

// @Summary Accept offer
// @Description Accept an offer: fulfills the request, rejects competitors and creates the catalog item
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.AcceptOfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id}/accept [post]
func (h *OfferHandler) Accept(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer id", nil)
		return
	}

	result, err := h.cmds.Accept(c.Request.Context(), offerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		case errors.Is(err, commands.ErrOfferConflict), errors.Is(err, commands.ErrRequestNotAcceptingOffers):
			httperr.AbortWithError(c, http.StatusConflict, err, "Offer can no longer be accepted", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Accept offer failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAcceptOfferResult(result))
}

// @Summary List own offers
// @Description List the seller's offers joined with their originating requests
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SellerOfferResponse
// @Failure 401 {object} map[string]string
// @Router /offers/seller [get]
func (h *OfferHandler) ListMine(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offers", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSellerOfferDetails(views))
}

// @Summary List offered request ids
// @Description List the ids of requests the seller has a live offer on
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Router /offers/seller/my-offers [get]
func (h *OfferHandler) ListMineRequestIDs(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	ids, err := h.q.ListRequestIDsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offered requests", nil)
		return
	}

	c.JSON(http.StatusOK, ids)
}
