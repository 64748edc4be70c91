package entity

import "time"

type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Employee struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        *string   `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	RoleID       int64     `json:"role_id" db:"role_id"`
	EmployeeID   *int64    `json:"employee_id" db:"employee_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	RoleName string    `json:"role,omitempty"`
	Employee *Employee `json:"employee,omitempty"`
}

type RegisterInput struct {
	Username   string  `json:"username" binding:"required"`
	Password   string  `json:"password" binding:"required,min=6"`
	Email      *string `json:"email"`
	RoleID     int64   `json:"role_id" binding:"required"`
	EmployeeID *int64  `json:"employee_id"`
}

// CreateUserInput is the manager-facing variant: role by name, and the
// employee either linked by id or created from a name on the fly.
type CreateUserInput struct {
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password" binding:"required,min=6"`
	Email        *string `json:"email"`
	Role         string  `json:"role" binding:"required"`
	EmployeeID   *int64  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
}
