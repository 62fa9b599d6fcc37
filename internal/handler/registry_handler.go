package handler

import (
	"net/http"

	"agritrace/internal/store"
	"agritrace/pkg/pagination"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the cooperative and farmer rosters backing the
// admin form selects and the sidebar.
type RegistryHandler struct {
	store *store.Store
}

func NewRegistryHandler(st *store.Store) *RegistryHandler {
	return &RegistryHandler{store: st}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *RegistryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/cooperatives", h.ListCooperatives)
	router.GET("/api/farmers", h.ListFarmers)
}

// ListCooperatives returns paginated cooperatives
// @Summary      List cooperatives
// @Tags         registry
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 20)"
// @Success      200    {object}  response.Response{data=[]model.Cooperative}
// @Router       /api/cooperatives [get]
func (h *RegistryHandler) ListCooperatives(c *gin.Context) {
	params := pagination.Parse(c)
	coops := h.store.Cooperatives()
	start, end := params.Slice(len(coops))
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, coops[start:end], params.Page, params.Limit, int64(len(coops))))
}

// ListFarmers returns paginated farmers
// @Summary      List farmers
// @Tags         registry
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 20)"
// @Success      200    {object}  response.Response{data=[]model.Farmer}
// @Router       /api/farmers [get]
func (h *RegistryHandler) ListFarmers(c *gin.Context) {
	params := pagination.Parse(c)
	farmers := h.store.Farmers()
	start, end := params.Slice(len(farmers))
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, farmers[start:end], params.Page, params.Limit, int64(len(farmers))))
}
