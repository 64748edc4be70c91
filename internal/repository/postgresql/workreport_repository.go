package repository

import (
	"database/sql"

	entity "moteka/internal/domain"
)

type WorkReportRepository interface {
	Create(rep *entity.WorkReport) error
	List() ([]entity.WorkReport, error)
	ListByOrder(orderID int64) ([]entity.WorkReport, error)
}

type workReportRepository struct {
	db *sql.DB
}

func NewWorkReportRepository(db *sql.DB) WorkReportRepository {
	return &workReportRepository{db: db}
}

func (r *workReportRepository) Create(rep *entity.WorkReport) error {
	return r.db.QueryRow(`
		INSERT INTO work_reports
			(order_id, mechanic_id, description, client_name, plate, vin,
			 model_name, brand_name, mechanic_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, rep.OrderID, rep.MechanicID, rep.Description, rep.ClientName, rep.Plate,
		rep.VIN, rep.ModelName, rep.BrandName, rep.MechanicName).
		Scan(&rep.ID, &rep.CreatedAt)
}

func (r *workReportRepository) List() ([]entity.WorkReport, error) {
	rows, err := r.db.Query(`
		SELECT id, order_id, mechanic_id, description, client_name, plate, vin,
		       model_name, brand_name, mechanic_name, created_at
		FROM work_reports
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectReports(rows)
}

func (r *workReportRepository) ListByOrder(orderID int64) ([]entity.WorkReport, error) {
	rows, err := r.db.Query(`
		SELECT id, order_id, mechanic_id, description, client_name, plate, vin,
		       model_name, brand_name, mechanic_name, created_at
		FROM work_reports
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	return collectReports(rows)
}

func collectReports(rows *sql.Rows) ([]entity.WorkReport, error) {
	defer rows.Close()

	reports := []entity.WorkReport{}
	for rows.Next() {
		var rep entity.WorkReport
		if err := rows.Scan(&rep.ID, &rep.OrderID, &rep.MechanicID, &rep.Description,
			&rep.ClientName, &rep.Plate, &rep.VIN, &rep.ModelName, &rep.BrandName,
			&rep.MechanicName, &rep.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
