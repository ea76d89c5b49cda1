package postgres

import (
	"context"
	"errors"

	"github.com/dmoralesgt/empleados-api/internal/domain/user"
	"github.com/dmoralesgt/empleados-api/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepo struct {
	pool    *pgxpool.Pool
	metrics *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, metrics *observability.Prom) *UsersRepo {
	return &UsersRepo{pool: pool, metrics: metrics}
}

func (r *UsersRepo) GetByEmail(ctx context.Context, correo string) (user.User, error) {
	var u user.User

	query := func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT id, correo, password_hash, rol
             FROM usuarios
             WHERE correo = $1`,
			correo,
		).Scan(
			&u.ID,
			&u.Correo,
			&u.PasswordHash,
			&u.Rol,
		)
	}

	var err error
	if r.metrics != nil {
		err = r.metrics.ObserveDB("usuarios.get_by_email", query)
	} else {
		err = query()
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}
	return u, nil
}
