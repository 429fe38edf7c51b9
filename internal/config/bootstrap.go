package config

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gympoint/dashboard-service/internal/store"
)

// CreateDefaultAdmin inserts the bootstrap admin account if no user with the
// configured admin email exists yet. Idempotent across restarts.
func CreateDefaultAdmin(cfg *Config, db *store.DB) error {
	ctx := context.Background()

	var count int
	err := db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email_address = $1", cfg.AdminEmail).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO users (first_name, last_name, email_address, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
	`, "Gym", "Admin", cfg.AdminEmail, string(hashed), "admin")
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	return nil
}
