package db

import (
	"context"
	"errors"

	"github.com/dmoralesgt/empleados-api/internal/config"
	"github.com/dmoralesgt/empleados-api/internal/security"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureAdminUser inserts the configured admin usuario if it does not exist
// yet, so a fresh database can log in without manual seeding.
func EnsureAdminUser(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var dummy int

	err := pool.QueryRow(ctx, `SELECT id FROM usuarios WHERE correo = $1`, cfg.AdminEmail).Scan(&dummy)

	if err == nil {
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := security.HashPassword(cfg.AdminPassword)

	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO usuarios (correo, password_hash, rol)
         VALUES ($1, $2, 'admin')`,
		cfg.AdminEmail, hash,
	)

	return err
}
