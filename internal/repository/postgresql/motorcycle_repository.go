package repository

import (
	"database/sql"
	"fmt"
	"strings"

	entity "moteka/internal/domain"
)

type MotorcycleRepository interface {
	List(filter entity.MotorcycleFilter) ([]entity.Motorcycle, error)
	GetByID(id int64) (*entity.Motorcycle, error)
	PlateTaken(plate string, excludeID int64) (bool, error)
	VINTaken(vin string, excludeID int64) (bool, error)
	Create(m *entity.Motorcycle) error
	Update(m *entity.Motorcycle) error
	Delete(id int64) error
	HasOrders(id int64) (bool, error)
}

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

const motoColumns = `
	m.id, m.client_id, m.model_id, m.plate, m.vin, m.year, m.displacement_cc,
	m.color, m.mileage_km, m.last_service_at, m.notes, m.created_at, m.updated_at,
	c.id, c.name, c.phone, c.email, c.address, c.created_at, c.updated_at,
	md.id, md.brand_id, md.name, md.created_at, md.updated_at,
	b.name`

const motoJoins = `
	FROM motorcycles m
	JOIN clients c ON c.id = m.client_id
	LEFT JOIN models md ON md.id = m.model_id
	LEFT JOIN brands b ON b.id = md.brand_id`

func scanMotorcycle(row interface{ Scan(...any) error }) (*entity.Motorcycle, error) {
	var m entity.Motorcycle
	var cli entity.Client

	// model columns are nullable when no model is linked
	var mdID, mdBrandID *int64
	var mdName *string
	var mdCreated, mdUpdated sql.NullTime

	err := row.Scan(
		&m.ID, &m.ClientID, &m.ModelID, &m.Plate, &m.VIN, &m.Year, &m.DisplacementCC,
		&m.Color, &m.MileageKM, &m.LastServiceAt, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
		&cli.ID, &cli.Name, &cli.Phone, &cli.Email, &cli.Address, &cli.CreatedAt, &cli.UpdatedAt,
		&mdID, &mdBrandID, &mdName, &mdCreated, &mdUpdated,
		&m.BrandName,
	)
	if err != nil {
		return nil, err
	}

	m.Client = &cli
	if mdID != nil {
		m.Model = &entity.MotoModel{
			ID:        *mdID,
			BrandID:   *mdBrandID,
			Name:      *mdName,
			CreatedAt: mdCreated.Time,
			UpdatedAt: mdUpdated.Time,
			BrandName: m.BrandName,
		}
	}
	return &m, nil
}

func (r *motorcycleRepository) List(filter entity.MotorcycleFilter) ([]entity.Motorcycle, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.ClientID > 0 {
		add("m.client_id = $%d", filter.ClientID)
	}
	if filter.ClientName != "" {
		add("c.name ILIKE $%d", "%"+filter.ClientName+"%")
	}
	if filter.ModelID > 0 {
		add("m.model_id = $%d", filter.ModelID)
	}
	if filter.BrandID > 0 {
		add("md.brand_id = $%d", filter.BrandID)
	}
	if filter.Plate != "" {
		add("m.plate ILIKE $%d", "%"+filter.Plate+"%")
	}
	if filter.VIN != "" {
		add("m.vin ILIKE $%d", "%"+filter.VIN+"%")
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(m.plate ILIKE $%d OR m.vin ILIKE $%d OR m.color ILIKE $%d)", n, n, n))
	}

	query := "SELECT" + motoColumns + motoJoins
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY m.created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	motos := []entity.Motorcycle{}
	for rows.Next() {
		m, err := scanMotorcycle(rows)
		if err != nil {
			return nil, err
		}
		motos = append(motos, *m)
	}
	return motos, rows.Err()
}

func (r *motorcycleRepository) GetByID(id int64) (*entity.Motorcycle, error) {
	query := "SELECT" + motoColumns + motoJoins + " WHERE m.id = $1"

	m, err := scanMotorcycle(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) PlateTaken(plate string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM motorcycles WHERE plate = $1 AND id <> $2)
	`, plate, excludeID).Scan(&taken)
	return taken, err
}

func (r *motorcycleRepository) VINTaken(vin string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM motorcycles WHERE vin = $1 AND id <> $2)
	`, vin, excludeID).Scan(&taken)
	return taken, err
}

func (r *motorcycleRepository) Create(m *entity.Motorcycle) error {
	return r.db.QueryRow(`
		INSERT INTO motorcycles
			(client_id, model_id, plate, vin, year, displacement_cc, color,
			 mileage_km, last_service_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, m.ClientID, m.ModelID, m.Plate, m.VIN, m.Year, m.DisplacementCC, m.Color,
		m.MileageKM, m.LastServiceAt, m.Notes).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *motorcycleRepository) Update(m *entity.Motorcycle) error {
	return r.db.QueryRow(`
		UPDATE motorcycles
		SET model_id = $1, plate = $2, vin = $3, year = $4, displacement_cc = $5,
		    color = $6, mileage_km = $7, last_service_at = $8, notes = $9,
		    updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`, m.ModelID, m.Plate, m.VIN, m.Year, m.DisplacementCC, m.Color,
		m.MileageKM, m.LastServiceAt, m.Notes, m.ID).
		Scan(&m.UpdatedAt)
}

func (r *motorcycleRepository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM motorcycles WHERE id = $1`, id)
	return err
}

func (r *motorcycleRepository) HasOrders(id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM work_orders WHERE motorcycle_id = $1)
	`, id).Scan(&has)
	return has, err
}
