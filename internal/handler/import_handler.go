package handler

import (
	"errors"
	"io"
	"net/http"

	"agritrace/internal/middleware"
	"agritrace/internal/model"
	"agritrace/internal/service"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	importService service.ImportService
	authService   service.AuthService
}

func NewImportHandler(importService service.ImportService, authService service.AuthService) *ImportHandler {
	return &ImportHandler{importService: importService, authService: authService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *ImportHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api/admin", middleware.RequireRole(model.RoleAdmin))
	{
		admin.POST("/import", h.ImportGeoJSON)
		admin.GET("/import/status", h.ImportStatus)
	}
}

// ImportGeoJSON ingests an uploaded GeoJSON FeatureCollection
// @Summary      Import GeoJSON
// @Description  Parses an uploaded FeatureCollection into farmer and field records. Invalid features are skipped and counted; a structural or parse failure aborts the whole batch with zero records committed. Returns 409 while a previous import is still running.
// @Tags         admin
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "GeoJSON file"
// @Success      200   {object}  response.Response{data=service.ImportSummary}
// @Failure      400   {object}  response.Response{data=service.ImportSummary}
// @Failure      409   {object}  response.Response
// @Router       /api/admin/import [post]
func (h *ImportHandler) ImportGeoJSON(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "No file selected for upload."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Failed to open upload: "+err.Error()))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Failed to read upload: "+err.Error()))
		return
	}

	user := h.authService.UserByID(middleware.UserIDFromContext(c))
	summary, err := h.importService.ImportGeoJSON(user, data)
	if err != nil {
		if errors.Is(err, service.ErrImportInProgress) {
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	if summary.Status == "Error" {
		c.JSON(http.StatusBadRequest, response.Response{
			Status:     "error",
			StatusCode: http.StatusBadRequest,
			Data:       summary,
			Error:      summary.Message,
		})
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// ImportStatus reports whether an import is currently running
// @Summary      Import status
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/admin/import/status [get]
func (h *ImportHandler) ImportStatus(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"in_progress": h.importService.InProgress()}))
}
