package postgres

import (
	"context"
	"errors"

	"github.com/dmoralesgt/empleados-api/internal/domain/employee"
	"github.com/dmoralesgt/empleados-api/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeesRepo struct {
	pool    *pgxpool.Pool
	metrics *observability.Prom
}

// metrics may be nil (tests); queries then run unobserved.
func NewEmployeesRepo(pool *pgxpool.Pool, metrics *observability.Prom) *EmployeesRepo {
	return &EmployeesRepo{pool: pool, metrics: metrics}
}

func (r *EmployeesRepo) observe(op string, fn func() error) error {
	if r.metrics == nil {
		return fn()
	}
	return r.metrics.ObserveDB(op, fn)
}

// GetActiveByDPI looks up the employee eligible for token issuance.
// Inactive rows are invisible here.
func (r *EmployeesRepo) GetActiveByDPI(ctx context.Context, dpi string) (employee.Employee, error) {
	var e employee.Employee

	err := r.observe("empleados.get_active_by_dpi", func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT id, nombre, dpi, correo, limite_credito, saldo, activo
             FROM empleados
             WHERE dpi = $1 AND activo`,
			dpi,
		).Scan(
			&e.ID,
			&e.Nombre,
			&e.DPI,
			&e.Correo,
			&e.LimiteCredito,
			&e.Saldo,
			&e.Activo,
		)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNotFound
		}

		return employee.Employee{}, err
	}
	return e, nil
}

// ConsultarSaldo runs the balance lookup through the consultar_saldo SQL
// function, the stored-procedure contract the store exposes. The function
// itself filters out inactive employees.
func (r *EmployeesRepo) ConsultarSaldo(ctx context.Context, dpi string) (employee.Saldo, error) {
	var s employee.Saldo

	err := r.observe("empleados.consultar_saldo", func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT nombre, dpi, limite_credito, saldo FROM consultar_saldo($1)`,
			dpi,
		).Scan(&s.Nombre, &s.DPI, &s.LimiteCredito, &s.Saldo)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Saldo{}, employee.ErrNotFound
		}

		return employee.Saldo{}, err
	}
	return s, nil
}

func (r *EmployeesRepo) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var e employee.Employee

	err := r.observe("empleados.create", func() error {
		return r.pool.QueryRow(
			ctx,
			`INSERT INTO empleados (nombre, dpi, correo, limite_credito, saldo, activo)
             VALUES ($1, $2, $3, $4, $5, TRUE)
             RETURNING id, nombre, dpi, correo, limite_credito, saldo, activo`,
			req.Nombre,
			req.DPI,
			req.Correo,
			req.LimiteCredito,
			req.Saldo,
		).Scan(
			&e.ID,
			&e.Nombre,
			&e.DPI,
			&e.Correo,
			&e.LimiteCredito,
			&e.Saldo,
			&e.Activo,
		)
	})

	if err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

// Update writes the full editable row. There is deliberately no existence
// check: updating a missing id succeeds and touches zero rows.
func (r *EmployeesRepo) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
	return r.observe("empleados.update", func() error {
		_, err := r.pool.Exec(
			ctx,
			`UPDATE empleados
                SET nombre = $2,
                    correo = $3,
                    limite_credito = $4,
                    saldo = $5
              WHERE id = $1`,
			id,
			req.Nombre,
			req.Correo,
			req.LimiteCredito,
			req.Saldo,
		)

		return err
	})
}

// Disable flips activo off. Disabling twice is not an error.
func (r *EmployeesRepo) Disable(ctx context.Context, id int) error {
	return r.observe("empleados.disable", func() error {
		_, err := r.pool.Exec(ctx, `UPDATE empleados SET activo = FALSE WHERE id = $1`, id)

		return err
	})
}

// Delete removes the row unconditionally; a missing id is not an error.
func (r *EmployeesRepo) Delete(ctx context.Context, id int) error {
	return r.observe("empleados.delete", func() error {
		_, err := r.pool.Exec(ctx, `DELETE FROM empleados WHERE id = $1`, id)

		return err
	})
}
