package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dmoralesgt/empleados-api/internal/config"
	"github.com/dmoralesgt/empleados-api/internal/domain/employee"
	"github.com/gin-gonic/gin"
)

type EmployeeWriter interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error
	Disable(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

// AdminEmpleadosHandler holds the admin-gated mutations. The role check
// happens in middleware before any of these run.
type AdminEmpleadosHandler struct {
	store EmployeeWriter
}

func NewAdminEmpleadosHandler(store EmployeeWriter) *AdminEmpleadosHandler {
	return &AdminEmpleadosHandler{store: store}
}

func (h *AdminEmpleadosHandler) CrearEmpleado(ctx *gin.Context) {
	var req employee.CreateEmployeeRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	_, err := h.store.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Error al crear empleado.")
		return
	}

	RespondMessage(ctx, http.StatusCreated, "Empleado creado exitosamente.")
}

func (h *AdminEmpleadosHandler) EditarEmpleado(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	// No existence check: updating a missing id still reports success.
	if err := h.store.Update(cctx, id, req); err != nil {
		RespondInternal(ctx, "Error al actualizar empleado.")
		return
	}

	RespondMessage(ctx, http.StatusOK, "Empleado actualizado exitosamente.")
}

// DeshabilitarEmpleado is idempotent: disabling twice still succeeds.
func (h *AdminEmpleadosHandler) DeshabilitarEmpleado(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	if err := h.store.Disable(cctx, id); err != nil {
		RespondInternal(ctx, "Error al deshabilitar empleado.")
		return
	}

	RespondMessage(ctx, http.StatusOK, "Empleado deshabilitado exitosamente.")
}

func (h *AdminEmpleadosHandler) EliminarEmpleado(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	// No existence check here either; deleting a missing id succeeds.
	if err := h.store.Delete(cctx, id); err != nil {
		RespondInternal(ctx, "Error al eliminar empleado.")
		return
	}

	RespondMessage(ctx, http.StatusOK, "Empleado eliminado exitosamente.")
}

func pathID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))

	if err != nil {
		RespondBadRequest(ctx, "Solicitud inválida: id debe ser numérico.")
		return 0, false
	}

	return id, true
}
