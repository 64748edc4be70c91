package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entity "moteka/internal/domain"
)

// writeError maps a service error to its HTTP status. Internal errors
// never leak their message to the client.
func writeError(c *gin.Context, err error) {
	switch entity.KindOf(err) {
	case entity.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case entity.KindInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case entity.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case entity.KindUnauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case entity.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// actorFrom rebuilds the request identity stored by the auth middleware.
func actorFrom(c *gin.Context) entity.ActorContext {
	actor := entity.ActorContext{}
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get("role_name"); ok {
		if role, ok := v.(string); ok {
			actor.Role = role
		}
	}
	if v, ok := c.Get("employee_id"); ok {
		if id, ok := v.(*int64); ok {
			actor.EmployeeID = id
		}
	}
	return actor
}
