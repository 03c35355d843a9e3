package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrTemplateNotFound       = errors.New("email template not found")
	ErrTemplateNameRequired   = errors.New("email template name is required")
	ErrInvalidTemplateContent = errors.New("invalid template content")
	ErrTestEmailFailed        = errors.New("failed to send test email")
)

const previewLength = 100

type EmailTemplateProcessor struct {
	store        EmailTemplateStore
	renderer     TemplateRenderer
	emailService EmailService
	logger       *observability.Logger
	now          func() time.Time
}

func New(store EmailTemplateStore, renderer TemplateRenderer, emailService EmailService, logger *observability.Logger) EmailTemplateProcessor {
	return EmailTemplateProcessor{
		store:        store,
		renderer:     renderer,
		emailService: emailService,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateEmailTemplateRequest represents a request to create an email template
type CreateEmailTemplateRequest struct {
	Name    string
	Subject string
	Body    string
	Preview string
}

// CreateEmailTemplate validates the Liquid in subject and body and stores the template
func (p *EmailTemplateProcessor) CreateEmailTemplate(ctx context.Context, req CreateEmailTemplateRequest) (store.EmailTemplate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return store.EmailTemplate{}, ErrTemplateNameRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "template_name", Value: name})

	if err := p.validate(ctx, req.Subject, req.Body); err != nil {
		return store.EmailTemplate{}, err
	}

	template, err := p.store.CreateEmailTemplate(ctx, store.EmailTemplate{
		Name:      name,
		Subject:   req.Subject,
		Body:      req.Body,
		Preview:   previewOf(req.Preview, req.Body),
		CreatedAt: p.now().UTC(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create email template", err)
		return store.EmailTemplate{}, err
	}

	p.logger.Info(ctx, "email template created successfully")
	return template, nil
}

// GetEmailTemplate retrieves an email template by ID
func (p *EmailTemplateProcessor) GetEmailTemplate(ctx context.Context, id string) (store.EmailTemplate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "template_id", Value: id})

	template, err := p.store.GetEmailTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailTemplate{}, ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to get email template", err)
		return store.EmailTemplate{}, err
	}
	return template, nil
}

func (p *EmailTemplateProcessor) ListEmailTemplates(ctx context.Context) ([]store.EmailTemplate, error) {
	templates, err := p.store.ListEmailTemplates(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list email templates", err)
		return nil, err
	}
	return templates, nil
}

// UpdateEmailTemplateRequest is a partial update. Nil fields are left unchanged.
type UpdateEmailTemplateRequest struct {
	Name    *string
	Subject *string
	Body    *string
	Preview *string
}

func (p *EmailTemplateProcessor) UpdateEmailTemplate(ctx context.Context, id string, req UpdateEmailTemplateRequest) (store.EmailTemplate, error) {
	template, err := p.GetEmailTemplate(ctx, id)
	if err != nil {
		return store.EmailTemplate{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "template_id", Value: template.ID})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return store.EmailTemplate{}, ErrTemplateNameRequired
		}
		template.Name = name
	}
	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.Body != nil {
		template.Body = *req.Body
	}
	if req.Preview != nil {
		template.Preview = *req.Preview
	}
	if err := p.validate(ctx, template.Subject, template.Body); err != nil {
		return store.EmailTemplate{}, err
	}
	updatedAt := p.now().UTC()
	template.UpdatedAt = &updatedAt

	updated, err := p.store.UpdateEmailTemplate(ctx, template)
	if err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			p.logger.Error(ctx, "failed to update email template", err)
		}
		return store.EmailTemplate{}, err
	}

	p.logger.Info(ctx, "email template updated successfully")
	return updated, nil
}

func (p *EmailTemplateProcessor) DeleteEmailTemplate(ctx context.Context, id string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "template_id", Value: id})

	if err := p.store.DeleteEmailTemplate(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to delete email template", err)
		return err
	}

	p.logger.Info(ctx, "email template deleted successfully")
	return nil
}

// SendTestEmailRequest represents a request to send a test email
type SendTestEmailRequest struct {
	RecipientEmail string
	TestData       map[string]any
}

// SendTestEmail renders a template with sample data and sends it immediately
func (p *EmailTemplateProcessor) SendTestEmail(ctx context.Context, id string, req SendTestEmailRequest) error {
	template, err := p.GetEmailTemplate(ctx, id)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "template_id", Value: template.ID},
		observability.Field{Key: "recipient", Value: req.RecipientEmail},
	)

	vars := map[string]any{
		"firstName": "Test",
		"lastName":  "Participant",
		"email":     req.RecipientEmail,
		"company":   "Qatar Boat Show",
		"category":  store.SubmissionCategoryTrade,
	}
	for k, v := range req.TestData {
		vars[k] = v
	}

	subject, err := p.renderer.Render(template.Subject, vars)
	if err != nil {
		return ErrInvalidTemplateContent
	}
	body, err := p.renderer.Render(template.Body, vars)
	if err != nil {
		return ErrInvalidTemplateContent
	}

	if _, err := p.emailService.SendEmail(ctx, req.RecipientEmail, "[TEST] "+subject, body); err != nil {
		p.logger.Error(ctx, "failed to send test email", err)
		return ErrTestEmailFailed
	}

	p.logger.Info(ctx, "test email sent")
	return nil
}

// previewOf returns preview, or the first previewLength characters of body
func previewOf(preview, body string) string {
	if preview != "" {
		return preview
	}
	runes := []rune(body)
	if len(runes) <= previewLength {
		return body
	}
	return string(runes[:previewLength]) + "..."
}

func (p *EmailTemplateProcessor) validate(ctx context.Context, subject, body string) error {
	for _, source := range []string{subject, body} {
		if err := p.renderer.Validate(source); err != nil {
			p.logger.InfoWithError(ctx, "invalid template content", err)
			return ErrInvalidTemplateContent
		}
	}
	return nil
}
