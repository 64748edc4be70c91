package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role names as stored in the roles table and embedded in tokens.
const (
	RoleManager    = "gerente"
	RoleSupervisor = "encargado"
	RoleMechanic   = "mecanico"
)

type JWTClaims struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employee_id,omitempty"`

	jwt.RegisteredClaims
}

// ActorContext is the per-request identity derived from verified claims.
// It is threaded explicitly into every authorization and mutation call.
type ActorContext struct {
	UserID     int64
	Role       string
	EmployeeID *int64
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"access_token"`
	User  UserResp `json:"user"`
}

// UserResp is the public user shape, never carries the password hash.
type UserResp struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Email    *string   `json:"email"`
	Role     string    `json:"role"`
	Employee *Employee `json:"employee"`
}
