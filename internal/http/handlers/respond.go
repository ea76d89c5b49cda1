package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Failures are a status code plus a short human-readable message, never a
// structured body. Success paths render JSON only where the contract says so
// (saldo, login).

func RespondMessage(ctx *gin.Context, status int, message string) {
	ctx.String(status, message)
}

func RespondBadRequest(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusBadRequest, message)
}

func RespondUnauthorized(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusUnauthorized, message)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusNotFound, message)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondMessage(ctx, http.StatusInternalServerError, message)
}
