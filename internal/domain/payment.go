package entity

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentCard     PaymentMethod = "TARJETA"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return PaymentMethod(s), true
	}
	return "", false
}

type Payment struct {
	ID      int64         `json:"id" db:"id"`
	OrderID int64         `json:"order_id" db:"order_id"`
	Method  PaymentMethod `json:"method" db:"method"`
	Amount  float64       `json:"amount" db:"amount"`
	PaidAt  time.Time     `json:"paid_at" db:"paid_at"`
}

type PaymentInput struct {
	Method string  `json:"method" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}
