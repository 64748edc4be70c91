package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	entity "moteka/internal/domain"
)

type OrderRepository interface {
	List(filter entity.OrderFilter) ([]entity.WorkOrder, error)
	GetByID(id int64) (*entity.WorkOrder, error)
	CreateWithInitialHistory(order *entity.WorkOrder, note string) error
	ChangeStatus(orderID int64, status entity.OrderStatus, exitAt *time.Time, note *string) error
	UpdateAssignment(orderID int64, mechanicID *int64, notes *string) error
	History(orderID int64) ([]entity.StatusHistoryEntry, error)
	Payments(orderID int64) ([]entity.Payment, error)
	CreatePayment(p *entity.Payment) error
}

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `
	o.id, o.client_id, o.motorcycle_id, o.assigned_mechanic_id, o.status,
	o.intake_at, o.exit_at, o.notes, o.created_at, o.updated_at,
	e.name,
	c.id, c.name, c.phone, c.email, c.address, c.created_at, c.updated_at,
	m.id, m.client_id, m.model_id, m.plate, m.vin, m.year, m.displacement_cc,
	m.color, m.mileage_km, m.last_service_at, m.notes, m.created_at, m.updated_at`

const orderJoins = `
	FROM work_orders o
	JOIN clients c ON c.id = o.client_id
	JOIN motorcycles m ON m.id = o.motorcycle_id
	LEFT JOIN employees e ON e.id = o.assigned_mechanic_id`

func scanOrder(row interface{ Scan(...any) error }) (*entity.WorkOrder, error) {
	var o entity.WorkOrder
	var cli entity.Client
	var moto entity.Motorcycle

	err := row.Scan(
		&o.ID, &o.ClientID, &o.MotorcycleID, &o.AssignedMechanicID, &o.Status,
		&o.IntakeAt, &o.ExitAt, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		&o.AssignedMechanicName,
		&cli.ID, &cli.Name, &cli.Phone, &cli.Email, &cli.Address, &cli.CreatedAt, &cli.UpdatedAt,
		&moto.ID, &moto.ClientID, &moto.ModelID, &moto.Plate, &moto.VIN, &moto.Year,
		&moto.DisplacementCC, &moto.Color, &moto.MileageKM, &moto.LastServiceAt,
		&moto.Notes, &moto.CreatedAt, &moto.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.Client = &cli
	o.Motorcycle = &moto
	return &o, nil
}

func (r *orderRepository) List(filter entity.OrderFilter) ([]entity.WorkOrder, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.ClientID > 0 {
		add("o.client_id = $%d", filter.ClientID)
	}
	if filter.ClientName != "" {
		add("c.name ILIKE $%d", "%"+filter.ClientName+"%")
	}
	if filter.MotorcycleID > 0 {
		add("o.motorcycle_id = $%d", filter.MotorcycleID)
	}
	if filter.MechanicID > 0 {
		add("o.assigned_mechanic_id = $%d", filter.MechanicID)
	}
	// unrecognized status filter values are dropped, not rejected
	if status, ok := entity.ParseOrderStatus(filter.Status); ok {
		add("o.status = $%d", string(status))
	}
	if from, err := parseISOTime(filter.From); err == nil {
		add("o.intake_at >= $%d", from)
	}
	if to, err := parseISOTime(filter.To); err == nil {
		add("o.intake_at <= $%d", to)
	}
	if filter.Plate != "" {
		add("m.plate ILIKE $%d", "%"+filter.Plate+"%")
	}

	query := "SELECT" + orderColumns + orderJoins
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY o.intake_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entity.WorkOrder{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) GetByID(id int64) (*entity.WorkOrder, error) {
	query := "SELECT" + orderColumns + orderJoins + " WHERE o.id = $1"

	o, err := scanOrder(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// CreateWithInitialHistory inserts the order and its first ledger entry in
// one transaction so an order never exists without history.
func (r *orderRepository) CreateWithInitialHistory(order *entity.WorkOrder, note string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO work_orders (client_id, motorcycle_id, assigned_mechanic_id, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, intake_at, created_at, updated_at
	`, order.ClientID, order.MotorcycleID, order.AssignedMechanicID, string(order.Status), order.Notes).
		Scan(&order.ID, &order.Status, &order.IntakeAt, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO order_status_history (order_id, status, note)
		VALUES ($1, $2, $3)
	`, order.ID, string(order.Status), note)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ChangeStatus updates the order and appends the history entry atomically.
// exit_at is COALESCEd so a timestamp already set is never overwritten.
func (r *orderRepository) ChangeStatus(orderID int64, status entity.OrderStatus, exitAt *time.Time, note *string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE work_orders
		SET status = $1, exit_at = COALESCE(exit_at, $2), updated_at = NOW()
		WHERE id = $3
	`, string(status), exitAt, orderID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO order_status_history (order_id, status, note)
		VALUES ($1, $2, $3)
	`, orderID, string(status), note)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *orderRepository) UpdateAssignment(orderID int64, mechanicID *int64, notes *string) error {
	_, err := r.db.Exec(`
		UPDATE work_orders
		SET assigned_mechanic_id = $1,
		    notes = COALESCE($2, notes),
		    updated_at = NOW()
		WHERE id = $3
	`, mechanicID, notes, orderID)
	return err
}

func (r *orderRepository) History(orderID int64) ([]entity.StatusHistoryEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, order_id, status, note, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY created_at ASC, id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.StatusHistoryEntry{}
	for rows.Next() {
		var h entity.StatusHistoryEntry
		if err := rows.Scan(&h.ID, &h.OrderID, &h.Status, &h.Note, &h.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}

func (r *orderRepository) Payments(orderID int64) ([]entity.Payment, error) {
	rows, err := r.db.Query(`
		SELECT id, order_id, method, amount, paid_at
		FROM payments
		WHERE order_id = $1
		ORDER BY paid_at ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []entity.Payment{}
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *orderRepository) CreatePayment(p *entity.Payment) error {
	return r.db.QueryRow(`
		INSERT INTO payments (order_id, method, amount)
		VALUES ($1, $2, $3)
		RETURNING id, paid_at
	`, p.OrderID, string(p.Method), p.Amount).Scan(&p.ID, &p.PaidAt)
}

// parseISOTime accepts RFC 3339 values, tolerating a trailing Z without
// offset as the frontend sends them.
func parseISOTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	return time.Parse(time.RFC3339, s)
}
