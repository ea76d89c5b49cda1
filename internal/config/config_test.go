package config_test

import (
	"testing"

	"github.com/dmoralesgt/empleados-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_SERVER", "DB_USER", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.Env != "dev" {
		t.Fatalf("got env %q, want dev", cfg.Env)
	}
	if cfg.Port != 3000 {
		t.Fatalf("got port %d, want 3000", cfg.Port)
	}
	if cfg.SMTPPort != 587 {
		t.Fatalf("got smtp port %d, want 587", cfg.SMTPPort)
	}
}

func TestLoadBuildsDBURL(t *testing.T) {
	t.Setenv("DB_SERVER", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "creditos")
	t.Setenv("DB_SSLMODE", "require")

	cfg := config.Load()

	want := "postgres://svc:pw@db.internal:5433/creditos?sslmode=require"
	if cfg.DBURL != want {
		t.Fatalf("got dburl %q, want %q", cfg.DBURL, want)
	}
}

func TestLoadReadsMailAndJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "sekret")
	t.Setenv("EMAIL_USER", "noreply@example.com")
	t.Setenv("EMAIL_PASS", "apppass")

	cfg := config.Load()

	if cfg.JWTSecret != "sekret" {
		t.Fatalf("got jwt secret %q", cfg.JWTSecret)
	}
	if cfg.EmailUser != "noreply@example.com" || cfg.EmailPass != "apppass" {
		t.Fatalf("mail credentials not loaded: %+v", cfg)
	}
}
