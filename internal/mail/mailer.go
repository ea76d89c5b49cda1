package mail

import "context"

type SendAccessTokenInput struct {
	Correo string
	Nombre string
	Token  string
}

// Notifier delivers a one-time access token to an employee. Kept as a small
// interface so handlers and tests can swap the transport.
type Notifier interface {
	SendAccessToken(ctx context.Context, input SendAccessTokenInput) error
}
