package email

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"errors"
	"fmt"
	"net/mail"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("email service: error sending email")
	ErrEmptyMessage        = errors.New("email message is empty")
)

// decisionLayout wraps the plain-text review message admins type in the dashboard
const decisionLayout = `<html>
	<body style="font-family: Arial, sans-serif; color: #1a2b4c;">
		<h2>{{ subject }}</h2>
		<p>Dear {{ firstName | fallback: "Participant" }},</p>
		<p>{{ message | escape | newline_to_br }}</p>
		{% if portalURL != "" %}<p><a href="{{ portalURL }}">Qatar Boat Show 2025</a></p>{% endif %}
		<p>Qatar Boat Show 2025 Team</p>
	</body>
</html>`

// EmailService renders queued notifications and hands them to the mail provider
type EmailService struct {
	sender        Sender
	renderer      *Renderer
	defaultSender string
	portalURL     string
	logger        *observability.Logger
}

func New(sender Sender, renderer *Renderer, defaultSender, portalURL string, logger *observability.Logger) *EmailService {
	return &EmailService{
		sender:        sender,
		renderer:      renderer,
		defaultSender: defaultSender,
		portalURL:     portalURL,
		logger:        logger,
	}
}

// SendEmail sends htmlContent to a single recipient from the default sender
func (s *EmailService) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	if _, err := mail.ParseAddress(to); err != nil {
		return "", ErrInvalidEmailAddress
	}
	if htmlContent == "" {
		return "", ErrEmptyMessage
	}

	id, err := s.sender.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("%w: %v", ErrSendingEmail, err)
	}
	return id, nil
}

// Deliver sends one queued notification. Review decisions are wrapped in the
// portal layout; campaign messages are already rendered HTML.
func (s *EmailService) Deliver(ctx context.Context, n store.Notification, firstName string) (string, error) {
	html := n.Message
	if n.Type != store.NotificationTypeCampaign {
		rendered, err := s.renderer.Render(decisionLayout, map[string]any{
			"subject":   n.Subject,
			"firstName": firstName,
			"message":   n.Message,
			"portalURL": s.portalURL,
		})
		if err != nil {
			return "", err
		}
		html = rendered
	}
	return s.SendEmail(ctx, n.To, n.Subject, html)
}
