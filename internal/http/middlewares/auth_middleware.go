package middlewares

import (
	"net/http"
	"strings"

	"github.com/dmoralesgt/empleados-api/internal/auth"
	"github.com/gin-gonic/gin"
)

// Keep this small interface so tests can fake it easily.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	jwt TokenVerifier
}

func NewAuthMiddleware(jwt TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

const ctxClaimsKey = "auth.claims"

// Decision is the outcome of an authorization check: either the request may
// proceed with verified claims attached, or it is denied with the status and
// message to send back. Computing this up front keeps the check testable
// without a gin context.
type Decision struct {
	Allowed bool
	Status  int
	Message string
	Claims  *auth.Claims
}

func allow(claims *auth.Claims) Decision {
	return Decision{Allowed: true, Claims: claims}
}

func deny(status int, message string) Decision {
	return Decision{Status: status, Message: message}
}

// Authorize inspects an Authorization header value and decides whether the
// bearer may reach an admin endpoint.
func (m *AuthMiddleware) Authorize(authHeader string) Decision {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return deny(http.StatusUnauthorized, "Acceso denegado. Falta el token.")
	}

	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if raw == "" {
		return deny(http.StatusUnauthorized, "Acceso denegado. Falta el token.")
	}

	claims, err := m.jwt.Verify(raw)
	if err != nil {
		return deny(http.StatusUnauthorized, "Token inválido o expirado.")
	}

	if !claims.IsAdmin() {
		return deny(http.StatusForbidden, "No tienes permisos para esta acción.")
	}

	return allow(claims)
}

// RequireAdmin translates the decision into gin control flow and stashes the
// verified claims for the handler.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		d := m.Authorize(c.GetHeader("Authorization"))

		if !d.Allowed {
			c.String(d.Status, d.Message)
			c.Abort()
			return
		}

		c.Set(ctxClaimsKey, d.Claims)

		c.Next()
	}
}

// ClaimsFromContext returns the claims RequireAdmin stored, so handlers don't
// need to know the magic key.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
