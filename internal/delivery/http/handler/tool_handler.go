package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entity "moteka/internal/domain"
	"moteka/internal/service"
)

type ToolHandler struct {
	toolService *service.ToolService
}

func NewToolHandler(toolService *service.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

// GET /tools
func (h *ToolHandler) List(c *gin.Context) {
	tools, err := h.toolService.List(c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tools})
}

// GET /tools/:id
func (h *ToolHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tool, err := h.toolService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tool})
}

// POST /tools
func (h *ToolHandler) Create(c *gin.Context) {
	var input entity.ToolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	tool, err := h.toolService.Create(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": tool})
}

// PATCH /tools/:id
func (h *ToolHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input entity.ToolUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	tool, err := h.toolService.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tool})
}

// DELETE /tools/:id
func (h *ToolHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.toolService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tool deleted"})
}
