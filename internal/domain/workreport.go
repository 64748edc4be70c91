package entity

import "time"

// WorkReport is a technician's note on an order, with a denormalized
// snapshot of the surrounding context taken at creation time so exports
// survive later catalog edits.
type WorkReport struct {
	ID          int64     `json:"id" db:"id"`
	OrderID     int64     `json:"order_id" db:"order_id"`
	MechanicID  int64     `json:"mechanic_id" db:"mechanic_id"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	ClientName   *string `json:"client_name" db:"client_name"`
	Plate        *string `json:"plate" db:"plate"`
	VIN          *string `json:"vin" db:"vin"`
	ModelName    *string `json:"model_name" db:"model_name"`
	BrandName    *string `json:"brand_name" db:"brand_name"`
	MechanicName *string `json:"mechanic_name" db:"mechanic_name"`
}

type WorkReportInput struct {
	OrderID     int64  `json:"order_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}
