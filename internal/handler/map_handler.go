package handler

import (
	"net/http"

	"agritrace/internal/middleware"
	"agritrace/internal/service"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	mapService  service.MapService
	authService service.AuthService
}

// NewMapHandler sets up the read-only map dashboard endpoints
func NewMapHandler(mapService service.MapService, authService service.AuthService) *MapHandler {
	return &MapHandler{mapService: mapService, authService: authService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup. Field access is
// fail-closed: requests without a resolvable identity get an empty set, not
// an error.
func (h *MapHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/fields", middleware.OptionalAuth(), h.ListFields)
	router.GET("/api/pois", middleware.OptionalAuth(), h.ListPOIs)
}

// ListFields returns the fields visible to the caller
// @Summary      List visible fields
// @Description  Returns the fields the caller may see given role and partnerships, optionally narrowed by a free-text search over farmer name and crop. Totals always reflect the full accessible set.
// @Tags         map
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive substring match on farmer name or crop"
// @Success      200     {object}  response.Response{data=service.FieldListResponse}
// @Router       /api/fields [get]
func (h *MapHandler) ListFields(c *gin.Context) {
	user := h.authService.UserByID(middleware.UserIDFromContext(c))
	res := h.mapService.VisibleFields(user, c.Query("search"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ListPOIs returns all points of interest
// @Summary      List points of interest
// @Tags         map
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.PointOfInterest}
// @Router       /api/pois [get]
func (h *MapHandler) ListPOIs(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.mapService.POIs()))
}
