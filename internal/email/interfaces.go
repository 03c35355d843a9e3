package email

import (
	"context"
)

// Sender delivers a single HTML email and returns the provider message id
type Sender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}
