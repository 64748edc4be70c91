package repository

import (
	"database/sql"

	entity "moteka/internal/domain"
)

// CatalogRepository covers the small keyed entities the rest of the
// system validates foreign keys against: brands, models and roles.
type CatalogRepository interface {
	ListBrands(q string) ([]entity.Brand, error)
	GetBrandByID(id int64) (*entity.Brand, error)
	BrandNameTaken(name string, excludeID int64) (bool, error)
	CreateBrand(b *entity.Brand) error
	UpdateBrand(b *entity.Brand) error
	DeleteBrand(id int64) error
	BrandHasModels(id int64) (bool, error)

	ListModels(brandID int64, q string) ([]entity.MotoModel, error)
	GetModelByID(id int64) (*entity.MotoModel, error)
	ModelNameTaken(brandID int64, name string, excludeID int64) (bool, error)
	CreateModel(m *entity.MotoModel) error
	UpdateModel(m *entity.MotoModel) error
	DeleteModel(id int64) error
	ModelHasMotorcycles(id int64) (bool, error)

	ListRoles() ([]entity.Role, error)
	GetRoleByID(id int64) (*entity.Role, error)
	GetRoleByName(name string) (*entity.Role, error)
	CreateRole(role *entity.Role) error
	DeleteRole(id int64) error
	RoleHasUsers(id int64) (bool, error)
}

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListBrands(q string) ([]entity.Brand, error) {
	query := `SELECT id, name, created_at, updated_at FROM brands`
	var args []any
	if q != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+q+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []entity.Brand{}
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *catalogRepository) GetBrandByID(id int64) (*entity.Brand, error) {
	var b entity.Brand
	err := r.db.QueryRow(`
		SELECT id, name, created_at, updated_at FROM brands WHERE id = $1
	`, id).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *catalogRepository) BrandNameTaken(name string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM brands WHERE name = $1 AND id <> $2)
	`, name, excludeID).Scan(&taken)
	return taken, err
}

func (r *catalogRepository) CreateBrand(b *entity.Brand) error {
	return r.db.QueryRow(`
		INSERT INTO brands (name) VALUES ($1)
		RETURNING id, created_at, updated_at
	`, b.Name).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *catalogRepository) UpdateBrand(b *entity.Brand) error {
	return r.db.QueryRow(`
		UPDATE brands SET name = $1, updated_at = NOW() WHERE id = $2
		RETURNING updated_at
	`, b.Name, b.ID).Scan(&b.UpdatedAt)
}

func (r *catalogRepository) DeleteBrand(id int64) error {
	_, err := r.db.Exec(`DELETE FROM brands WHERE id = $1`, id)
	return err
}

func (r *catalogRepository) BrandHasModels(id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM models WHERE brand_id = $1)
	`, id).Scan(&has)
	return has, err
}

func (r *catalogRepository) ListModels(brandID int64, q string) ([]entity.MotoModel, error) {
	query := `
		SELECT m.id, m.brand_id, m.name, m.created_at, m.updated_at, b.name
		FROM models m
		JOIN brands b ON b.id = m.brand_id
	`
	var conds []string
	var args []any
	if brandID > 0 {
		args = append(args, brandID)
		conds = append(conds, `m.brand_id = $1`)
	}
	if q != "" {
		args = append(args, "%"+q+"%")
		if len(args) == 1 {
			conds = append(conds, `m.name ILIKE $1`)
		} else {
			conds = append(conds, `m.name ILIKE $2`)
		}
	}
	if len(conds) > 0 {
		query += ` WHERE ` + conds[0]
		if len(conds) > 1 {
			query += ` AND ` + conds[1]
		}
	}
	query += ` ORDER BY m.name ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := []entity.MotoModel{}
	for rows.Next() {
		var m entity.MotoModel
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name, &m.CreatedAt, &m.UpdatedAt, &m.BrandName); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *catalogRepository) GetModelByID(id int64) (*entity.MotoModel, error) {
	var m entity.MotoModel
	err := r.db.QueryRow(`
		SELECT m.id, m.brand_id, m.name, m.created_at, m.updated_at, b.name
		FROM models m
		JOIN brands b ON b.id = m.brand_id
		WHERE m.id = $1
	`, id).Scan(&m.ID, &m.BrandID, &m.Name, &m.CreatedAt, &m.UpdatedAt, &m.BrandName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *catalogRepository) ModelNameTaken(brandID int64, name string, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM models WHERE brand_id = $1 AND name = $2 AND id <> $3)
	`, brandID, name, excludeID).Scan(&taken)
	return taken, err
}

func (r *catalogRepository) CreateModel(m *entity.MotoModel) error {
	return r.db.QueryRow(`
		INSERT INTO models (brand_id, name) VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, m.BrandID, m.Name).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *catalogRepository) UpdateModel(m *entity.MotoModel) error {
	return r.db.QueryRow(`
		UPDATE models SET brand_id = $1, name = $2, updated_at = NOW() WHERE id = $3
		RETURNING updated_at
	`, m.BrandID, m.Name, m.ID).Scan(&m.UpdatedAt)
}

func (r *catalogRepository) DeleteModel(id int64) error {
	_, err := r.db.Exec(`DELETE FROM models WHERE id = $1`, id)
	return err
}

func (r *catalogRepository) ModelHasMotorcycles(id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM motorcycles WHERE model_id = $1)
	`, id).Scan(&has)
	return has, err
}

func (r *catalogRepository) ListRoles() ([]entity.Role, error) {
	rows, err := r.db.Query(`SELECT id, name FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []entity.Role{}
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *catalogRepository) GetRoleByID(id int64) (*entity.Role, error) {
	var role entity.Role
	err := r.db.QueryRow(`SELECT id, name FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *catalogRepository) GetRoleByName(name string) (*entity.Role, error) {
	var role entity.Role
	err := r.db.QueryRow(`SELECT id, name FROM roles WHERE name = $1`, name).
		Scan(&role.ID, &role.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *catalogRepository) CreateRole(role *entity.Role) error {
	return r.db.QueryRow(`
		INSERT INTO roles (name) VALUES ($1) RETURNING id
	`, role.Name).Scan(&role.ID)
}

func (r *catalogRepository) DeleteRole(id int64) error {
	_, err := r.db.Exec(`DELETE FROM roles WHERE id = $1`, id)
	return err
}

func (r *catalogRepository) RoleHasUsers(id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM users WHERE role_id = $1)
	`, id).Scan(&has)
	return has, err
}
