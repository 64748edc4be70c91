package repository

import (
	"database/sql"

	entity "moteka/internal/domain"
)

type ClientRepository interface {
	List(q string) ([]entity.Client, error)
	GetByID(id int64) (*entity.Client, error)
	EmailTaken(email string, excludeID int64) (bool, error)
	Create(c *entity.Client) error
	Update(c *entity.Client) error
	Delete(id int64) error
	HasMotorcycles(id int64) (bool, error)
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) List(q string) ([]entity.Client, error) {
	query := `
		SELECT id, name, phone, email, address, created_at, updated_at
		FROM clients
	`
	var args []any
	if q != "" {
		query += ` WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+q+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []entity.Client{}
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) GetByID(id int64) (*entity.Client, error) {
	var c entity.Client

	err := r.db.QueryRow(`
		SELECT id, name, phone, email, address, created_at, updated_at
		FROM clients
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) EmailTaken(email string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM clients WHERE email = $1 AND id <> $2)
	`, email, excludeID).Scan(&taken)
	return taken, err
}

func (r *clientRepository) Create(c *entity.Client) error {
	return r.db.QueryRow(`
		INSERT INTO clients (name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Phone, c.Email, c.Address).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *clientRepository) Update(c *entity.Client) error {
	return r.db.QueryRow(`
		UPDATE clients
		SET name = $1, phone = $2, email = $3, address = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`, c.Name, c.Phone, c.Email, c.Address, c.ID).Scan(&c.UpdatedAt)
}

func (r *clientRepository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM clients WHERE id = $1`, id)
	return err
}

func (r *clientRepository) HasMotorcycles(id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM motorcycles WHERE client_id = $1)
	`, id).Scan(&has)
	return has, err
}
