package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entity "moteka/internal/domain"
	"moteka/internal/service"
)

type MotorcycleHandler struct {
	motoService *service.MotorcycleService
}

func NewMotorcycleHandler(motoService *service.MotorcycleService) *MotorcycleHandler {
	return &MotorcycleHandler{motoService: motoService}
}

// GET /motorcycles
func (h *MotorcycleHandler) List(c *gin.Context) {
	var filter entity.MotorcycleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "detail": err.Error()})
		return
	}

	motos, err := h.motoService.List(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": motos})
}

// GET /motorcycles/:id
func (h *MotorcycleHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	moto, err := h.motoService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": moto})
}

// POST /motorcycles
func (h *MotorcycleHandler) Create(c *gin.Context) {
	var input entity.MotorcycleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	moto, err := h.motoService.Create(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": moto})
}

// PUT /motorcycles/:id
func (h *MotorcycleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input entity.MotorcycleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	moto, err := h.motoService.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": moto})
}

// DELETE /motorcycles/:id
func (h *MotorcycleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.motoService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "motorcycle deleted"})
}
