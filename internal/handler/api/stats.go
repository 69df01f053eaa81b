package api

import (
	"net/http"

	resdto "marketlink/internal/handler/dto/response"
	"marketlink/internal/handler/httperr"
	"marketlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Marketplace statistics
// @Description Catalog totals, participant counts and top sellers by quantity
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /stats [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	view, err := h.q.Overview(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load statistics", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}
