package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entity "moteka/internal/domain"
	"moteka/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	resp, err := h.authService.Login(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	// actor is present only when the request carried a valid token
	var actor *entity.ActorContext
	if _, ok := c.Get("user_id"); ok {
		a := actorFrom(c)
		actor = &a
	}

	user, err := h.authService.Register(input, actor)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "user": user})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor := actorFrom(c)

	user, err := h.authService.Me(actor.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// POST /auth/logout
//
// Tokens are stateless, so this only acknowledges; clients drop the
// token on their side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
