package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmoralesgt/empleados-api/internal/auth"
	"github.com/dmoralesgt/empleados-api/internal/config"
	"github.com/dmoralesgt/empleados-api/internal/domain/employee"
	"github.com/dmoralesgt/empleados-api/internal/mail"
	"github.com/dmoralesgt/empleados-api/internal/observability"
	"github.com/gin-gonic/gin"
)

type EmployeeReader interface {
	GetActiveByDPI(ctx context.Context, dpi string) (employee.Employee, error)
	ConsultarSaldo(ctx context.Context, dpi string) (employee.Saldo, error)
}

type EmpleadosHandler struct {
	store   EmployeeReader
	jwt     *auth.Manager
	mailer  mail.Notifier
	metrics *observability.Prom
}

func NewEmpleadosHandler(store EmployeeReader, jwtManager *auth.Manager, mailer mail.Notifier, metrics *observability.Prom) *EmpleadosHandler {
	return &EmpleadosHandler{
		store:   store,
		jwt:     jwtManager,
		mailer:  mailer,
		metrics: metrics,
	}
}

type EnviarTokenRequest struct {
	DPI string `json:"dpi" binding:"required"`
}

// EnviarToken mints a 10-minute token for an active employee and mails it to
// the address on record.
func (h *EmpleadosHandler) EnviarToken(ctx *gin.Context) {
	var req EnviarTokenRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	emp, err := h.store.GetActiveByDPI(cctx, req.DPI)

	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			RespondNotFound(ctx, "Empleado no encontrado o no activo.")
			return
		}

		RespondInternal(ctx, "Error al generar o enviar el token.")
		return
	}

	token, err := h.jwt.IssueEmployeeToken(emp.DPI)

	if err != nil {
		RespondInternal(ctx, "Error al generar o enviar el token.")
		return
	}

	// Mail delivery is synchronous: a failed send must fail the request.
	err = h.mailer.SendAccessToken(ctx.Request.Context(), mail.SendAccessTokenInput{
		Correo: emp.Correo,
		Nombre: emp.Nombre,
		Token:  token,
	})

	if h.metrics != nil {
		h.metrics.ObserveMail(err)
	}

	if err != nil {
		RespondInternal(ctx, "Error al generar o enviar el token.")
		return
	}

	RespondMessage(ctx, http.StatusOK, "Token generado y enviado al correo.")
}

// Saldo verifies the query-string token itself: any valid token is accepted
// here, role unchecked.
func (h *EmpleadosHandler) Saldo(ctx *gin.Context) {
	dpi := ctx.Query("dpi")
	token := ctx.Query("token")

	if _, err := h.jwt.Verify(token); err != nil {
		RespondUnauthorized(ctx, "Token inválido o expirado.")
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	saldo, err := h.store.ConsultarSaldo(cctx, dpi)

	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			RespondNotFound(ctx, "Empleado no encontrado o no activo.")
			return
		}

		// The saldo contract has no 500; store failures collapse into the
		// uniform 401 message.
		RespondUnauthorized(ctx, "Token inválido o expirado.")
		return
	}

	ctx.JSON(http.StatusOK, saldo)
}
