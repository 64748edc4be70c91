package repository

import (
	"database/sql"

	entity "moteka/internal/domain"
)

type DashboardRepository interface {
	TodayCounts() (entity.TodaySummary, error)
	ActiveClients() (int, error)
	RevenueToday() (float64, error)
	MechanicsTotal() (int, error)
	MechanicsBusy() (int, error)
	ActiveOrdersToday() ([]entity.ActiveOrderRow, error)
}

type dashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) TodayCounts() (entity.TodaySummary, error) {
	var s entity.TodaySummary
	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'EN_ESPERA'),
		       COUNT(*) FILTER (WHERE status = 'EN_REPARACION'),
		       COUNT(*) FILTER (WHERE status = 'FINALIZADA'),
		       COUNT(*) FILTER (WHERE status = 'CANCELADA')
		FROM work_orders
		WHERE intake_at >= date_trunc('day', NOW())
		  AND intake_at < date_trunc('day', NOW()) + INTERVAL '1 day'
	`).Scan(&s.Total, &s.Waiting, &s.InRepair, &s.Done, &s.Cancelled)
	return s, err
}

func (r *dashboardRepository) ActiveClients() (int, error) {
	var n int
	err := r.db.QueryRow(`
		SELECT COUNT(DISTINCT c.id)
		FROM clients c
		JOIN motorcycles m ON m.client_id = c.id
	`).Scan(&n)
	return n, err
}

func (r *dashboardRepository) RevenueToday() (float64, error) {
	var total float64
	err := r.db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE paid_at >= date_trunc('day', NOW())
		  AND paid_at < date_trunc('day', NOW()) + INTERVAL '1 day'
	`).Scan(&total)
	return total, err
}

func (r *dashboardRepository) MechanicsTotal() (int, error) {
	var n int
	err := r.db.QueryRow(`
		SELECT COUNT(DISTINCT e.id)
		FROM employees e
		JOIN users u ON u.employee_id = e.id
		JOIN roles ro ON ro.id = u.role_id
		WHERE ro.name = $1 AND e.active = TRUE
	`, entity.RoleMechanic).Scan(&n)
	return n, err
}

func (r *dashboardRepository) MechanicsBusy() (int, error) {
	var n int
	err := r.db.QueryRow(`
		SELECT COUNT(DISTINCT assigned_mechanic_id)
		FROM work_orders
		WHERE status = 'EN_REPARACION' AND assigned_mechanic_id IS NOT NULL
	`).Scan(&n)
	return n, err
}

func (r *dashboardRepository) ActiveOrdersToday() ([]entity.ActiveOrderRow, error) {
	rows, err := r.db.Query(`
		SELECT o.id, o.status, o.intake_at, c.name,
		       COALESCE(m.plate, m.vin), COALESCE(e.name, 'Sin asignar')
		FROM work_orders o
		JOIN clients c ON c.id = o.client_id
		JOIN motorcycles m ON m.id = o.motorcycle_id
		LEFT JOIN employees e ON e.id = o.assigned_mechanic_id
		WHERE o.status IN ('EN_ESPERA', 'EN_REPARACION')
		  AND o.intake_at >= date_trunc('day', NOW())
		  AND o.intake_at < date_trunc('day', NOW()) + INTERVAL '1 day'
		ORDER BY o.intake_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	active := []entity.ActiveOrderRow{}
	for rows.Next() {
		var row entity.ActiveOrderRow
		var intakeAt sql.NullTime
		if err := rows.Scan(&row.ID, &row.Status, &intakeAt, &row.Client, &row.Moto, &row.Mechanic); err != nil {
			return nil, err
		}
		if intakeAt.Valid {
			row.IntakeAt = intakeAt.Time.Format("2006-01-02T15:04:05Z07:00")
		}
		active = append(active, row)
	}
	return active, rows.Err()
}
