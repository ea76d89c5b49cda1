package mail

import (
	"context"
	"fmt"
	"log"
	"os"
)

// LogMailer stands in for SMTP in dev and tests: it prints instead of
// sending, so the token flow can be exercised without mail credentials.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (n *LogMailer) SendAccessToken(ctx context.Context, in SendAccessTokenInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Optional: simulate provider outage
	if os.Getenv("MAILER_FAIL") == "1" {
		return fmt.Errorf("provider down (simulated)")
	}

	log.Printf("mail.access_token correo=%s nombre=%s token=%s", in.Correo, in.Nombre, in.Token)
	return nil
}
