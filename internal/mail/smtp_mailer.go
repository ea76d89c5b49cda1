package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/dmoralesgt/empleados-api/internal/config"
	"github.com/jordan-wright/email"
)

// SMTPMailer sends the token email over plain-auth SMTP (Gmail-style).
type SMTPMailer struct {
	host string
	addr string
	user string
	pass string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPHost,
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		user: cfg.EmailUser,
		pass: cfg.EmailPass,
	}
}

func (m *SMTPMailer) SendAccessToken(ctx context.Context, in SendAccessTokenInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := email.NewEmail()
	e.From = m.user
	e.To = []string{in.Correo}
	e.Subject = "Tu Token de Acceso"
	e.Text = []byte(fmt.Sprintf(
		"Hola %s, tu token de acceso es: %s. Este token es válido por 10 minutos.",
		in.Nombre, in.Token,
	))

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return e.Send(m.addr, auth)
}
