package entity

// TodaySummary counts orders opened today by status.
type TodaySummary struct {
	Total     int `json:"total"`
	Waiting   int `json:"en_espera"`
	InRepair  int `json:"en_reparacion"`
	Done      int `json:"finalizadas"`
	Cancelled int `json:"canceladas"`
}

// ActiveOrderRow is the compact listing the dashboard shows for orders
// still in the shop today.
type ActiveOrderRow struct {
	ID       int64       `json:"id"`
	Status   OrderStatus `json:"status"`
	IntakeAt string      `json:"intake_at"`
	Client   *string     `json:"client"`
	Moto     *string     `json:"moto"`
	Mechanic string      `json:"mechanic"`
}

type DashboardSummary struct {
	Today          TodaySummary     `json:"today"`
	ActiveClients  int              `json:"active_clients"`
	RevenueToday   float64          `json:"revenue_today"`
	MechanicsTotal int              `json:"mechanics_total"`
	MechanicsBusy  int              `json:"mechanics_busy"`
	ActiveOrders   []ActiveOrderRow `json:"active_orders_today"`
}
