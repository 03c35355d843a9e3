package store

import (
	"context"
	"fmt"
)

// EmailTemplateKey normalizes a bare or prefixed template id to its store key
func EmailTemplateKey(id string) string {
	return keyFor(PrefixEmailTemplate, id)
}

// CreateEmailTemplate stores a new email template under a fresh time-based id
func (s *Store) CreateEmailTemplate(ctx context.Context, template EmailTemplate) (EmailTemplate, error) {
	id, version, err := s.insertWithTimeID(ctx, PrefixEmailTemplate, func(id string) any {
		template.ID = id
		return template
	})
	if err != nil {
		return EmailTemplate{}, fmt.Errorf("failed to create email template: %w", err)
	}
	template.ID = id
	template.Version = version
	return template, nil
}

// GetEmailTemplate retrieves an email template by bare or prefixed id
func (s *Store) GetEmailTemplate(ctx context.Context, id string) (EmailTemplate, error) {
	var template EmailTemplate
	version, err := s.get(ctx, EmailTemplateKey(id), &template)
	if err != nil {
		return EmailTemplate{}, err
	}
	template.Version = version
	return template, nil
}

// ListEmailTemplates returns every email template ordered by id
func (s *Store) ListEmailTemplates(ctx context.Context) ([]EmailTemplate, error) {
	templates, err := list(ctx, s.kv, PrefixEmailTemplate, func(t *EmailTemplate, v int64) { t.Version = v })
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	return templates, nil
}

// UpdateEmailTemplate writes template if it has not changed since it was read
func (s *Store) UpdateEmailTemplate(ctx context.Context, template EmailTemplate) (EmailTemplate, error) {
	version, err := s.put(ctx, EmailTemplateKey(template.ID), template, template.Version)
	if err != nil {
		return EmailTemplate{}, err
	}
	template.Version = version
	return template, nil
}

// DeleteEmailTemplate removes an email template
func (s *Store) DeleteEmailTemplate(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, EmailTemplateKey(id))
}
