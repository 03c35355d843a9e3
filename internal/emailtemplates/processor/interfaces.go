package processor

import (
	"boatshow-server/internal/store"
	"context"
)

// EmailTemplateStore defines the store operations required by EmailTemplateProcessor
type EmailTemplateStore interface {
	CreateEmailTemplate(ctx context.Context, template store.EmailTemplate) (store.EmailTemplate, error)
	GetEmailTemplate(ctx context.Context, id string) (store.EmailTemplate, error)
	ListEmailTemplates(ctx context.Context) ([]store.EmailTemplate, error)
	UpdateEmailTemplate(ctx context.Context, template store.EmailTemplate) (store.EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, id string) error
}

// TemplateRenderer parses and renders Liquid sources
type TemplateRenderer interface {
	Validate(source string) error
	Render(source string, vars map[string]any) (string, error)
}

// EmailService defines the email operations required by EmailTemplateProcessor
type EmailService interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}
