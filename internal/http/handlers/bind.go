package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds and validates a JSON body. On failure it answers 400 with a
// one-line message naming the first offending field, and returns false.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, bindErrorMessage(err))

		return false
	}

	return true
}

func bindErrorMessage(err error) string {
	var validatorErrs validator.ValidationErrors

	if errors.As(err, &validatorErrs) && len(validatorErrs) > 0 {
		fe := validatorErrs[0]
		return "Solicitud inválida: campo " + strings.ToLower(fe.Field()) + " " + validationMessage(fe.Tag(), fe.Param())
	}

	return "Solicitud inválida: cuerpo JSON malformado."
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un correo válido"
	case "min":
		return "debe tener al menos " + param
	case "max":
		return "debe tener a lo sumo " + param
	default:
		return "no pasó la validación " + rule
	}
}
