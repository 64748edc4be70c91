package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entity "moteka/internal/domain"
	"moteka/internal/service"
)

type WorkReportHandler struct {
	reportService *service.WorkReportService
}

func NewWorkReportHandler(reportService *service.WorkReportService) *WorkReportHandler {
	return &WorkReportHandler{reportService: reportService}
}

// POST /work-reports
func (h *WorkReportHandler) Create(c *gin.Context) {
	var input entity.WorkReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	report, err := h.reportService.Create(input, actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": report})
}

// GET /orders/:id/work-reports
func (h *WorkReportHandler) ListByOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reports, err := h.reportService.ListByOrder(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports})
}

// GET /work-reports, optionally narrowed with ?order_id=
func (h *WorkReportHandler) List(c *gin.Context) {
	var (
		reports []entity.WorkReport
		err     error
	)
	if s := c.Query("order_id"); s != "" {
		orderID, parseErr := strconv.ParseInt(s, 10, 64)
		if parseErr != nil || orderID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order_id"})
			return
		}
		reports, err = h.reportService.ListByOrder(orderID)
	} else {
		reports, err = h.reportService.List()
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports})
}
