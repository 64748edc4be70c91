package entity

import "time"

type ToolStatus string

const (
	ToolOperational  ToolStatus = "OPERATIVA"
	ToolUnderRepair  ToolStatus = "EN_REPARACION"
	ToolOutOfService ToolStatus = "FUERA_DE_SERVICIO"
)

func ParseToolStatus(s string) (ToolStatus, bool) {
	switch ToolStatus(s) {
	case ToolOperational, ToolUnderRepair, ToolOutOfService:
		return ToolStatus(s), true
	}
	return "", false
}

type Tool struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	Quantity    int        `json:"quantity" db:"quantity"`
	Status      ToolStatus `json:"status" db:"status"`
	Location    *string    `json:"location" db:"location"`
	BrandModel  *string    `json:"brand_model" db:"brand_model"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type ToolInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Status      string  `json:"status"`
	Location    *string `json:"location"`
	BrandModel  *string `json:"brand_model"`
}

type ToolUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Status      *string `json:"status"`
	Location    *string `json:"location"`
	BrandModel  *string `json:"brand_model"`
}
