package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmoralesgt/empleados-api/internal/auth"
	"github.com/dmoralesgt/empleados-api/internal/config"
	"github.com/dmoralesgt/empleados-api/internal/http/handlers"
	"github.com/dmoralesgt/empleados-api/internal/http/middlewares"
	"github.com/dmoralesgt/empleados-api/internal/mail"
	"github.com/dmoralesgt/empleados-api/internal/observability"
	"github.com/dmoralesgt/empleados-api/internal/repo/postgres"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(log *slog.Logger, pool *pgxpool.Pool, cfg config.Config, mailer mail.Notifier) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(otelgin.Middleware("empleados-api"))

	// own registry so tests can build routers freely
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)
	r.Use(prom.GinHandleMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// wire up repositories
	employeesRepo := postgres.NewEmployeesRepo(pool, prom)
	usersRepo := postgres.NewUsersRepo(pool, prom)

	jwtManager := auth.NewManager(cfg.JWTSecret)

	// wire up handlers
	empleadosHandler := handlers.NewEmpleadosHandler(employeesRepo, jwtManager, mailer, prom)
	adminHandler := handlers.NewAdminEmpleadosHandler(employeesRepo)
	authHandler := handlers.NewAuthHandler(usersRepo, jwtManager)

	authMw := middlewares.NewAuthMiddleware(jwtManager)
	requireAdmin := authMw.RequireAdmin()

	api := r.Group("/api/empleados")

	api.POST("/enviar-token", empleadosHandler.EnviarToken)
	api.GET("/saldo", empleadosHandler.Saldo)
	api.POST("/login", authHandler.Login)

	api.POST("/crear-empleado", requireAdmin, adminHandler.CrearEmpleado)
	api.PUT("/editar-empleado/:id", requireAdmin, adminHandler.EditarEmpleado)
	api.PUT("/deshabilitar-empleado/:id", requireAdmin, adminHandler.DeshabilitarEmpleado)
	api.DELETE("/:id", requireAdmin, adminHandler.EliminarEmpleado)

	return r
}
