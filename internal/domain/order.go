package entity

import (
	"strings"
	"time"
)

// OrderStatus values travel over the wire exactly as stored.
type OrderStatus string

const (
	StatusWaiting   OrderStatus = "EN_ESPERA"
	StatusInRepair  OrderStatus = "EN_REPARACION"
	StatusDone      OrderStatus = "FINALIZADA"
	StatusCancelled OrderStatus = "CANCELADA"
)

// ParseOrderStatus validates a wire value against the closed status set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusWaiting, StatusInRepair, StatusDone, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Terminal reports whether the order is considered closed in this status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// Human renders the status for customer-facing text: EN_ESPERA -> "En Espera".
func (s OrderStatus) Human() string {
	words := strings.Split(strings.ReplaceAll(string(s), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

type WorkOrder struct {
	ID                 int64       `json:"id" db:"id"`
	ClientID           int64       `json:"client_id" db:"client_id"`
	MotorcycleID       int64       `json:"motorcycle_id" db:"motorcycle_id"`
	AssignedMechanicID *int64      `json:"assigned_mechanic_id" db:"assigned_mechanic_id"`
	Status             OrderStatus `json:"status" db:"status"`
	IntakeAt           time.Time   `json:"intake_at" db:"intake_at"`
	ExitAt             *time.Time  `json:"exit_at" db:"exit_at"`
	Notes              *string     `json:"notes" db:"notes"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at" db:"updated_at"`

	// filled from joins for API responses
	AssignedMechanicName *string     `json:"assigned_mechanic_name,omitempty"`
	Client               *Client     `json:"client,omitempty"`
	Motorcycle           *Motorcycle `json:"motorcycle,omitempty"`
}

// StatusHistoryEntry is one row of the append-only transition ledger.
type StatusHistoryEntry struct {
	ID        int64       `json:"id" db:"id"`
	OrderID   int64       `json:"order_id" db:"order_id"`
	Status    OrderStatus `json:"status" db:"status"`
	Note      *string     `json:"note" db:"note"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

type CreateOrderInput struct {
	ClientID     int64   `json:"client_id" binding:"required"`
	MotorcycleID int64   `json:"motorcycle_id" binding:"required"`
	MechanicID   *int64  `json:"mechanic_id"`
	Notes        *string `json:"notes"`
}

type ChangeStatusInput struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type UpdateOrderInput struct {
	MechanicID *int64  `json:"mechanic_id"`
	Notes      *string `json:"notes"`
}

// OrderFilter holds list query parameters. Unrecognized status values are
// ignored by the list endpoint, unlike the transition endpoint which
// rejects them.
type OrderFilter struct {
	ClientID     int64  `form:"client_id"`
	ClientName   string `form:"client_name"`
	MotorcycleID int64  `form:"motorcycle_id"`
	MechanicID   int64  `form:"mechanic_id"`
	Status       string `form:"status"`
	From         string `form:"from"`
	To           string `form:"to"`
	Plate        string `form:"plate"`
}
