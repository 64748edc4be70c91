package repository

import (
	"database/sql"

	entity "moteka/internal/domain"
)

type UserRepository interface {
	GetByUsername(username string) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	List() ([]entity.User, error)
	Create(user *entity.User) error
	Count() (int, error)
	UsernameTaken(username string) (bool, error)
	EmailTaken(email string) (bool, error)

	GetEmployeeByID(id int64) (*entity.Employee, error)
	CreateEmployee(e *entity.Employee) error
	ListMechanics() ([]entity.Employee, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	u.id, u.username, u.email, u.password_hash, u.role_id, u.employee_id,
	u.created_at, u.updated_at, r.name,
	e.id, e.name, e.active, e.created_at, e.updated_at`

const userJoins = `
	FROM users u
	JOIN roles r ON r.id = u.role_id
	LEFT JOIN employees e ON e.id = u.employee_id`

func scanUser(row interface{ Scan(...any) error }) (*entity.User, error) {
	var u entity.User

	var empID *int64
	var empName *string
	var empActive sql.NullBool
	var empCreated, empUpdated sql.NullTime

	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID, &u.EmployeeID,
		&u.CreatedAt, &u.UpdatedAt, &u.RoleName,
		&empID, &empName, &empActive, &empCreated, &empUpdated,
	)
	if err != nil {
		return nil, err
	}

	if empID != nil {
		u.Employee = &entity.Employee{
			ID:        *empID,
			Name:      *empName,
			Active:    empActive.Bool,
			CreatedAt: empCreated.Time,
			UpdatedAt: empUpdated.Time,
		}
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	query := "SELECT" + userColumns + userJoins + " WHERE u.username = $1"

	u, err := scanUser(r.db.QueryRow(query, username))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(id int64) (*entity.User, error) {
	query := "SELECT" + userColumns + userJoins + " WHERE u.id = $1"

	u, err := scanUser(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List() ([]entity.User, error) {
	query := "SELECT" + userColumns + userJoins + " ORDER BY u.username ASC"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) Create(user *entity.User) error {
	return r.db.QueryRow(`
		INSERT INTO users (username, email, password_hash, role_id, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, user.Username, user.Email, user.PasswordHash, user.RoleID, user.EmployeeID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *userRepository) UsernameTaken(username string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
	`, username).Scan(&taken)
	return taken, err
}

func (r *userRepository) EmailTaken(email string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&taken)
	return taken, err
}

func (r *userRepository) GetEmployeeByID(id int64) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.QueryRow(`
		SELECT id, name, active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *userRepository) CreateEmployee(e *entity.Employee) error {
	return r.db.QueryRow(`
		INSERT INTO employees (name, active)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, e.Name, e.Active).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// ListMechanics returns active employees whose linked user carries the
// mechanic role, for assignment pickers.
func (r *userRepository) ListMechanics() ([]entity.Employee, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT e.id, e.name, e.active, e.created_at, e.updated_at
		FROM employees e
		JOIN users u ON u.employee_id = e.id
		JOIN roles r ON r.id = u.role_id
		WHERE r.name = $1 AND e.active = TRUE
		ORDER BY e.name ASC
	`, entity.RoleMechanic)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mechanics := []entity.Employee{}
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		mechanics = append(mechanics, e)
	}
	return mechanics, rows.Err()
}
