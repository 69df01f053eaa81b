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
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Create an account with one of the marketplace roles
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrUsernameTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Username already taken", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Registration failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.AuthResponse{Token: result.Token, User: result.User})
}

// @Summary Login
// @Description Exchange credentials for a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.AuthResponse{Token: result.Token, User: result.User})
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CurrentUserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CurrentUserResponse{User: view})
}
