package handler

import (
	"net/http"

	"agritrace/internal/service"
	"agritrace/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProducerHandler struct {
	producerService service.ProducerService
}

func NewProducerHandler(producerService service.ProducerService) *ProducerHandler {
	return &ProducerHandler{producerService: producerService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *ProducerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/producers/:id", h.GetProducer)
}

// GetProducer loads the single-producer detail view
// @Summary      Producer detail
// @Tags         producers
// @Produce      json
// @Param        id  path  string  true  "Producer (farmer) ID"
// @Success      200  {object}  response.Response{data=service.ProducerDetail}
// @Failure      404  {object}  response.Response
// @Router       /api/producers/{id} [get]
func (h *ProducerHandler) GetProducer(c *gin.Context) {
	detail, err := h.producerService.Detail(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}
