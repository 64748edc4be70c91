package entity

import "time"

type Brand struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type MotoModel struct {
	ID        int64     `json:"id" db:"id"`
	BrandID   int64     `json:"brand_id" db:"brand_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	BrandName *string `json:"brand_name,omitempty"`
}

type Motorcycle struct {
	ID             int64      `json:"id" db:"id"`
	ClientID       int64      `json:"client_id" db:"client_id"`
	ModelID        *int64     `json:"model_id" db:"model_id"`
	Plate          *string    `json:"plate" db:"plate"`
	VIN            *string    `json:"vin" db:"vin"`
	Year           *int       `json:"year" db:"year"`
	DisplacementCC *int       `json:"displacement_cc" db:"displacement_cc"`
	Color          *string    `json:"color" db:"color"`
	MileageKM      int        `json:"mileage_km" db:"mileage_km"`
	LastServiceAt  *time.Time `json:"last_service_at" db:"last_service_at"`
	Notes          *string    `json:"notes" db:"notes"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`

	Client    *Client    `json:"client,omitempty"`
	Model     *MotoModel `json:"model,omitempty"`
	BrandName *string    `json:"brand_name,omitempty"`
}

type BrandInput struct {
	Name string `json:"name" binding:"required"`
}

type MotoModelInput struct {
	Name    string `json:"name" binding:"required"`
	BrandID int64  `json:"brand_id" binding:"required"`
}

type MotorcycleInput struct {
	ClientID       int64      `json:"client_id" binding:"required"`
	ModelID        *int64     `json:"model_id"`
	Plate          *string    `json:"plate"`
	VIN            *string    `json:"vin"`
	Year           *int       `json:"year"`
	DisplacementCC *int       `json:"displacement_cc"`
	Color          *string    `json:"color"`
	MileageKM      int        `json:"mileage_km"`
	LastServiceAt  *time.Time `json:"last_service_at"`
	Notes          *string    `json:"notes"`
}

type MotorcycleFilter struct {
	ClientID   int64  `form:"client_id"`
	ClientName string `form:"client_name"`
	ModelID    int64  `form:"model_id"`
	BrandID    int64  `form:"brand_id"`
	Plate      string `form:"plate"`
	VIN        string `form:"vin"`
	Query      string `form:"q"`
}
