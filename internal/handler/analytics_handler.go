package handler

import (
	"net/http"

	"agritrace/internal/middleware"
	"agritrace/internal/model"
	"agritrace/internal/service"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	analytics := router.Group("/api/analytics",
		middleware.RequireRole(model.RoleAdmin, model.RoleBuyer, model.RoleCooperative))
	{
		analytics.GET("/crop-distribution", h.GetCropDistribution)
		analytics.GET("/yield", h.GetYieldSeries)
	}
}

// GetCropDistribution returns per-crop field counts with chart colors
// @Summary      Crop distribution
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.CropSlice}
// @Router       /api/analytics/crop-distribution [get]
func (h *AnalyticsHandler) GetCropDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.analyticsService.CropDistribution()))
}

// GetYieldSeries returns the four-year yield series for a selected field
// @Summary      Yield series
// @Description  With no field selected (or a field with no timeline) the fixed baseline series is returned; otherwise a series deterministically derived from the field id.
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        field_id  query     string  false  "Selected field id"
// @Success      200       {object}  response.Response{data=[]model.YieldPoint}
// @Router       /api/analytics/yield [get]
func (h *AnalyticsHandler) GetYieldSeries(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.analyticsService.YieldSeries(c.Query("field_id"))))
}
