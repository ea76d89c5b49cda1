package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmoralesgt/empleados-api/internal/auth"
	"github.com/dmoralesgt/empleados-api/internal/config"
	"github.com/dmoralesgt/empleados-api/internal/domain/user"
	"github.com/dmoralesgt/empleados-api/internal/security"
	"github.com/gin-gonic/gin"
)

type UserReader interface {
	GetByEmail(ctx context.Context, correo string) (user.User, error)
}

type AuthHandler struct {
	users UserReader
	jwt   *auth.Manager
}

func NewAuthHandler(users UserReader, jwtManager *auth.Manager) *AuthHandler {
	return &AuthHandler{
		users: users,
		jwt:   jwtManager,
	}
}

type LoginRequest struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contraseña string `json:"contraseña" binding:"required"`
}

// Login exchanges usuario credentials for a role-bearing session token. The
// unknown-email 404 deliberately leaks existence; wrong password is a 401.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	foundUser, err := h.users.GetByEmail(cctx, req.Correo)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "Usuario no encontrado.")
			return
		}

		RespondInternal(ctx, "Error al iniciar sesión.")
		return
	}

	if err := security.CheckPassword(foundUser.PasswordHash, req.Contraseña); err != nil {
		RespondUnauthorized(ctx, "Contraseña incorrecta.")
		return
	}

	token, err := h.jwt.IssueSessionToken(foundUser.ID, foundUser.Rol)

	if err != nil {
		RespondInternal(ctx, "Error al iniciar sesión.")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
