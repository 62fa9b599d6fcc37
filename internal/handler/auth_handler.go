package handler

import (
	"net/http"

	"agritrace/internal/middleware"
	"agritrace/internal/model"
	"agritrace/internal/service"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler sets up the routing dependencies for the demo user switch
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login-as", h.LoginAs)
		auth.GET("/me", middleware.RequireRole(model.RoleAdmin, model.RoleBuyer, model.RoleCooperative), h.GetMe)
	}

	// The roster is public: it powers the user-switch dropdown.
	router.GET("/api/users", h.ListUsers)
}

// LoginAs switches the current demo identity
// @Summary      Switch demo user
// @Description  Issues a session token for one of the seeded demo users. There is no password: this is a demonstration user switch, not authentication.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginAsRequest  true  "Target user id"
// @Success      200      {object}  response.Response{data=service.TokenResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/auth/login-as [post]
func (h *AuthHandler) LoginAs(c *gin.Context) {
	var req service.LoginAsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tokenRes, err := h.authService.LoginAs(req.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, tokenRes))
}

// GetMe returns the current user for the session token
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.User}
// @Failure      404  {object}  response.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := h.authService.UserByID(middleware.UserIDFromContext(c))
	if user == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "user not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// ListUsers returns the demo user roster
// @Summary      List demo users
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.User}
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.authService.Users()))
}
