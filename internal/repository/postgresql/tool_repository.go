package repository

import (
	"database/sql"

	entity "moteka/internal/domain"
)

type ToolRepository interface {
	List(status *entity.ToolStatus) ([]entity.Tool, error)
	GetByID(id int64) (*entity.Tool, error)
	Create(t *entity.Tool) error
	Update(t *entity.Tool) error
	Delete(id int64) error
}

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) List(status *entity.ToolStatus) ([]entity.Tool, error) {
	query := `
		SELECT id, name, description, quantity, status, location, brand_model,
		       created_at, updated_at
		FROM tools
	`
	var args []any
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tools := []entity.Tool{}
	for rows.Next() {
		var t entity.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Quantity, &t.Status,
			&t.Location, &t.BrandModel, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) GetByID(id int64) (*entity.Tool, error) {
	var t entity.Tool
	err := r.db.QueryRow(`
		SELECT id, name, description, quantity, status, location, brand_model,
		       created_at, updated_at
		FROM tools
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Description, &t.Quantity, &t.Status,
		&t.Location, &t.BrandModel, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *toolRepository) Create(t *entity.Tool) error {
	return r.db.QueryRow(`
		INSERT INTO tools (name, description, quantity, status, location, brand_model)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.Name, t.Description, t.Quantity, string(t.Status), t.Location, t.BrandModel).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *toolRepository) Update(t *entity.Tool) error {
	return r.db.QueryRow(`
		UPDATE tools
		SET name = $1, description = $2, quantity = $3, status = $4,
		    location = $5, brand_model = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`, t.Name, t.Description, t.Quantity, string(t.Status), t.Location, t.BrandModel, t.ID).
		Scan(&t.UpdatedAt)
}

func (r *toolRepository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM tools WHERE id = $1`, id)
	return err
}
