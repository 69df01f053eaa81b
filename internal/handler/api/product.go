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

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description List catalog items; sellers see only their own listings
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} map[string]string
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	views, err := h.q.ListForRole(c.Request.Context(), userID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Get product
// @Description Get a catalog item by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Create product
// @Description Create a catalog item owned by the caller
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Create product request"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create product failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProductView(view))
}

// @Summary Update product
// @Description Update a catalog item (owner or admin)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Update product request"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.UpdateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), req, id, actorID, role)
	if err != nil {
		abortProductError(c, err, "Update product failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Delete product
// @Description Delete a catalog item (owner or admin)
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.Delete(c.Request.Context(), id, actorID, role); err != nil {
		abortProductError(c, err, "Delete product failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func abortProductError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, commands.ErrNotProductOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not the product owner", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	}
}
