package handler

import (
	"net/http"

	"agritrace/internal/middleware"
	"agritrace/internal/model"
	"agritrace/internal/service"
	"agritrace/pkg/pagination"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the create/edit/delete surface for all four entity
// kinds plus the change log. Everything here is admin-only.
type AdminHandler struct {
	adminService service.AdminService
	authService  service.AuthService
	changeLog    service.ChangeLogService
}

func NewAdminHandler(adminService service.AdminService, authService service.AuthService, changeLog service.ChangeLogService) *AdminHandler {
	return &AdminHandler{adminService: adminService, authService: authService, changeLog: changeLog}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api/admin", middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("/cooperatives", h.CreateCooperative)
		admin.PUT("/cooperatives/:id", h.UpdateCooperative)
		admin.DELETE("/cooperatives/:id", h.DeleteCooperative)

		admin.POST("/farmers", h.CreateFarmer)
		admin.PUT("/farmers/:id", h.UpdateFarmer)
		admin.DELETE("/farmers/:id", h.DeleteFarmer)

		admin.POST("/fields", h.CreateField)
		admin.PUT("/fields/:id", h.UpdateField)
		admin.DELETE("/fields/:id", h.DeleteField)

		admin.POST("/pois", h.CreatePOI)
		admin.PUT("/pois/:id", h.UpdatePOI)
		admin.DELETE("/pois/:id", h.DeletePOI)

		admin.GET("/changelog", h.ListChangeLog)
	}
}

func (h *AdminHandler) currentUser(c *gin.Context) *model.User {
	return h.authService.UserByID(middleware.UserIDFromContext(c))
}

// CreateCooperative creates a new cooperative
// @Summary      Create cooperative
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CooperativeForm  true  "Cooperative form"
// @Success      201      {object}  response.Response{data=model.Cooperative}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/cooperatives [post]
func (h *AdminHandler) CreateCooperative(c *gin.Context) {
	var form service.CooperativeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = ""
	coop, err := h.adminService.SaveCooperative(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, coop))
}

// UpdateCooperative updates an existing cooperative. An unknown id is a
// silent no-op, not an error.
// @Summary      Update cooperative
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Cooperative ID"
// @Param        payload  body      service.CooperativeForm  true  "Cooperative form"
// @Success      200      {object}  response.Response{data=model.Cooperative}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/cooperatives/{id} [put]
func (h *AdminHandler) UpdateCooperative(c *gin.Context) {
	var form service.CooperativeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = c.Param("id")
	coop, err := h.adminService.SaveCooperative(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, coop))
}

// DeleteCooperative removes a cooperative. Idempotent: deleting an absent id
// succeeds. Farmers referencing it keep their dangling reference.
// @Summary      Delete cooperative
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Cooperative ID"
// @Success      200  {object}  response.Response
// @Router       /api/admin/cooperatives/{id} [delete]
func (h *AdminHandler) DeleteCooperative(c *gin.Context) {
	h.adminService.DeleteCooperative(h.currentUser(c), c.Param("id"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Cooperative deleted"}))
}

// CreateFarmer creates a new farmer
// @Summary      Create farmer
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.FarmerForm  true  "Farmer form"
// @Success      201      {object}  response.Response{data=model.Farmer}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/farmers [post]
func (h *AdminHandler) CreateFarmer(c *gin.Context) {
	var form service.FarmerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = ""
	farmer, err := h.adminService.SaveFarmer(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, farmer))
}

// UpdateFarmer updates an existing farmer (silent no-op on unknown id)
// @Summary      Update farmer
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Farmer ID"
// @Param        payload  body      service.FarmerForm  true  "Farmer form"
// @Success      200      {object}  response.Response{data=model.Farmer}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/farmers/{id} [put]
func (h *AdminHandler) UpdateFarmer(c *gin.Context) {
	var form service.FarmerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = c.Param("id")
	farmer, err := h.adminService.SaveFarmer(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, farmer))
}

// DeleteFarmer removes a farmer without cascading to their fields
// @Summary      Delete farmer
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Farmer ID"
// @Success      200  {object}  response.Response
// @Router       /api/admin/farmers/{id} [delete]
func (h *AdminHandler) DeleteFarmer(c *gin.Context) {
	h.adminService.DeleteFarmer(h.currentUser(c), c.Param("id"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Farmer deleted"}))
}

// CreateField creates a new field from form data
// @Summary      Create field
// @Description  Area and polygon arrive as form strings. A malformed polygon string yields an empty polygon rather than an error.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.FieldForm  true  "Field form"
// @Success      201      {object}  response.Response{data=model.Field}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/fields [post]
func (h *AdminHandler) CreateField(c *gin.Context) {
	var form service.FieldForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = ""
	field, err := h.adminService.SaveField(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, field))
}

// UpdateField updates an existing field (silent no-op on unknown id)
// @Summary      Update field
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Field ID"
// @Param        payload  body      service.FieldForm  true  "Field form"
// @Success      200      {object}  response.Response{data=model.Field}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/fields/{id} [put]
func (h *AdminHandler) UpdateField(c *gin.Context) {
	var form service.FieldForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = c.Param("id")
	field, err := h.adminService.SaveField(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, field))
}

// DeleteField removes a field
// @Summary      Delete field
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Field ID"
// @Success      200  {object}  response.Response
// @Router       /api/admin/fields/{id} [delete]
func (h *AdminHandler) DeleteField(c *gin.Context) {
	h.adminService.DeleteField(h.currentUser(c), c.Param("id"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Field deleted"}))
}

// CreatePOI creates a new point of interest
// @Summary      Create point of interest
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.POIForm  true  "POI form"
// @Success      201      {object}  response.Response{data=model.PointOfInterest}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/pois [post]
func (h *AdminHandler) CreatePOI(c *gin.Context) {
	var form service.POIForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = ""
	poi, err := h.adminService.SavePOI(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, poi))
}

// UpdatePOI updates an existing point of interest (silent no-op on unknown id)
// @Summary      Update point of interest
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "POI ID"
// @Param        payload  body      service.POIForm  true  "POI form"
// @Success      200      {object}  response.Response{data=model.PointOfInterest}
// @Failure      400      {object}  response.Response
// @Router       /api/admin/pois/{id} [put]
func (h *AdminHandler) UpdatePOI(c *gin.Context) {
	var form service.POIForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	form.EditingID = c.Param("id")
	poi, err := h.adminService.SavePOI(h.currentUser(c), form)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, poi))
}

// DeletePOI removes a point of interest
// @Summary      Delete point of interest
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "POI ID"
// @Success      200  {object}  response.Response
// @Router       /api/admin/pois/{id} [delete]
func (h *AdminHandler) DeletePOI(c *gin.Context) {
	h.adminService.DeletePOI(h.currentUser(c), c.Param("id"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "POI deleted"}))
}

// ListChangeLog returns the admin change log, most recent first
// @Summary      List change log
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 20)"
// @Success      200    {object}  response.Response{data=[]model.ChangeLog}
// @Router       /api/admin/changelog [get]
func (h *AdminHandler) ListChangeLog(c *gin.Context) {
	params := pagination.Parse(c)
	entries, total := h.changeLog.List(params.Page, params.Limit)
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, entries, params.Page, params.Limit, total))
}
