package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcriv/campushub-api/internal/service"
	"github.com/marcriv/campushub-api/pkg/response"
)

// DashboardHandler exposes the admin overview snapshot.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Stats godoc
// @Summary Get dashboard statistics
// @Description Aggregates store sizes and runtime metrics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Stats(), nil)
}
