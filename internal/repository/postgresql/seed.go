package repository

import (
	"database/sql"
	"fmt"

	utils "moteka/pkg"
)

// SeedAdmin creates the bootstrap manager account on an empty user
// table. Subsequent boots are a no-op.
func SeedAdmin(db *sql.DB, password string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (username, password_hash, role_id)
		SELECT 'admin', $1, id FROM roles WHERE name = 'gerente'
	`, hash)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
