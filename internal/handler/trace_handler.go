package handler

import (
	"net/http"

	"agritrace/internal/middleware"
	"agritrace/internal/model"
	"agritrace/internal/service"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

type TraceHandler struct {
	traceService service.TraceService
	authService  service.AuthService
}

func NewTraceHandler(traceService service.TraceService, authService service.AuthService) *TraceHandler {
	return &TraceHandler{traceService: traceService, authService: authService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *TraceHandler) RegisterRoutes(router *gin.RouterGroup) {
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleBuyer, model.RoleCooperative)
	router.GET("/api/fields/:id/timeline", anyRole, h.GetTimeline)
	router.GET("/api/fields/:id/supply-chain", anyRole, h.GetSupplyChain)

	// Exports are permission-scoped to the requesting identity.
	export := router.Group("/api/export", middleware.OptionalAuth())
	{
		export.GET("/fields.csv", h.ExportCSV)
		export.GET("/fields.json", h.ExportJSON)
	}
}

// GetTimeline returns a field's traceability events, most recent first
// @Summary      Field timeline
// @Tags         traceability
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Field ID"
// @Success      200  {object}  response.Response{data=[]model.TimelineEvent}
// @Router       /api/fields/{id}/timeline [get]
func (h *TraceHandler) GetTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.traceService.Timeline(c.Param("id"))))
}

// GetSupplyChain returns the derived supply-chain checklist for a field
// @Summary      Field supply chain
// @Tags         traceability
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Field ID"
// @Success      200  {object}  response.Response{data=[]model.SupplyChainStep}
// @Router       /api/fields/{id}/supply-chain [get]
func (h *TraceHandler) GetSupplyChain(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.traceService.SupplyChain(c.Param("id"))))
}

// ExportCSV downloads the caller's accessible fields as CSV
// @Summary      Export fields CSV
// @Tags         traceability
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/fields.csv [get]
func (h *TraceHandler) ExportCSV(c *gin.Context) {
	user := h.authService.UserByID(middleware.UserIDFromContext(c))
	csv := h.traceService.ExportCSV(user)
	c.Header("Content-Disposition", `attachment; filename="agritrace_fields.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

// ExportJSON downloads the caller's accessible fields as pretty-printed JSON
// @Summary      Export fields JSON
// @Tags         traceability
// @Security     BearerAuth
// @Produce      json
// @Success      200  {string}  string
// @Router       /api/export/fields.json [get]
func (h *TraceHandler) ExportJSON(c *gin.Context) {
	user := h.authService.UserByID(middleware.UserIDFromContext(c))
	data, err := h.traceService.ExportJSON(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="agritrace_fields.json"`)
	c.Data(http.StatusOK, "application/json", data)
}
