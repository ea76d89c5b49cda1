package employee

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Employee is the single record this service manages. DPI is the external
// lookup key; ID is store-assigned.
type Employee struct {
	ID            int             `json:"id"`
	Nombre        string          `json:"nombre"`
	DPI           string          `json:"dpi"`
	Correo        string          `json:"correo"`
	LimiteCredito decimal.Decimal `json:"limiteCredito"`
	Saldo         decimal.Decimal `json:"saldo"`
	Activo        bool            `json:"activo"`
}

// Saldo is the balance record returned by the consultar_saldo lookup.
// Inactive employees never show up here.
type Saldo struct {
	Nombre        string          `json:"nombre"`
	DPI           string          `json:"dpi"`
	LimiteCredito decimal.Decimal `json:"limiteCredito"`
	Saldo         decimal.Decimal `json:"saldo"`
}

var ErrNotFound = errors.New("empleado not found")

type CreateEmployeeRequest struct {
	Nombre        string          `json:"nombre" binding:"required,min=2,max=120"`
	DPI           string          `json:"dpi" binding:"required,min=4,max=20"`
	Correo        string          `json:"correo" binding:"required,email"`
	LimiteCredito decimal.Decimal `json:"limiteCredito" binding:"required"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// UpdateEmployeeRequest is a full-row update; DPI and activo are not editable
// through this path.
type UpdateEmployeeRequest struct {
	Nombre        string          `json:"nombre" binding:"required,min=2,max=120"`
	Correo        string          `json:"correo" binding:"required,email"`
	LimiteCredito decimal.Decimal `json:"limiteCredito" binding:"required"`
	Saldo         decimal.Decimal `json:"saldo"`
}
