package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moteka/internal/service"
)

type DashboardHandler struct {
	dashService *service.DashboardService
}

func NewDashboardHandler(dashService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashService: dashService}
}

// GET /dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashService.Summary()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}
