package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrCampaignNotFound       = errors.New("email campaign not found")
	ErrCampaignNameRequired   = errors.New("campaign name is required")
	ErrCampaignAlreadySent    = errors.New("email campaign already sent")
	ErrNoRecipients           = errors.New("email campaign has no recipients")
	ErrInvalidCampaignContent = errors.New("invalid campaign content")
)

type EmailCampaignProcessor struct {
	store         CampaignStore
	renderer      TemplateRenderer
	defaultSender string
	logger        *observability.Logger
	now           func() time.Time
}

func New(store CampaignStore, renderer TemplateRenderer, defaultSender string, logger *observability.Logger) EmailCampaignProcessor {
	return EmailCampaignProcessor{
		store:         store,
		renderer:      renderer,
		defaultSender: defaultSender,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateCampaignRequest represents a request to create an email campaign.
// Recipients are the union of To and the contacts of MailingListID.
type CreateCampaignRequest struct {
	CampaignName  string
	From          string
	To            []string
	MailingListID string
	Template      string
	Subject       string
	Body          string
}

// CreateCampaign stores a new draft campaign
func (p *EmailCampaignProcessor) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (store.EmailCampaign, error) {
	name := strings.TrimSpace(req.CampaignName)
	if name == "" {
		return store.EmailCampaign{}, ErrCampaignNameRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_name", Value: name})

	if err := p.validateContent(ctx, req.Subject, req.Body); err != nil {
		return store.EmailCampaign{}, err
	}

	to := req.To
	if req.MailingListID != "" {
		list, err := p.GetMailingList(ctx, req.MailingListID)
		if err != nil {
			return store.EmailCampaign{}, err
		}
		to = append(append([]string{}, to...), list.Contacts...)
	}

	from := strings.TrimSpace(req.From)
	if from == "" {
		from = p.defaultSender
	}

	campaign, err := p.store.CreateEmailCampaign(ctx, store.EmailCampaign{
		CampaignName: name,
		From:         from,
		To:           normalizeContacts(to),
		Template:     req.Template,
		Subject:      req.Subject,
		Body:         req.Body,
		Status:       store.EmailCampaignStatusDraft,
		CreatedAt:    p.now().UTC(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create email campaign", err)
		return store.EmailCampaign{}, err
	}

	p.logger.Info(ctx, "email campaign created")
	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (p *EmailCampaignProcessor) GetCampaign(ctx context.Context, id string) (store.EmailCampaign, error) {
	campaign, err := p.store.GetEmailCampaign(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailCampaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get email campaign", err)
		return store.EmailCampaign{}, err
	}
	return campaign, nil
}

func (p *EmailCampaignProcessor) ListCampaigns(ctx context.Context) ([]store.EmailCampaign, error) {
	campaigns, err := p.store.ListEmailCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list email campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

// UpdateCampaignRequest is a partial update. Nil fields are left unchanged.
type UpdateCampaignRequest struct {
	CampaignName *string
	From         *string
	To           *[]string
	Template     *string
	Subject      *string
	Body         *string
}

// UpdateCampaign edits a draft. Campaigns being sent or already sent are immutable.
func (p *EmailCampaignProcessor) UpdateCampaign(ctx context.Context, id string, req UpdateCampaignRequest) (store.EmailCampaign, error) {
	campaign, err := p.GetCampaign(ctx, id)
	if err != nil {
		return store.EmailCampaign{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})

	if campaign.Status != store.EmailCampaignStatusDraft {
		return store.EmailCampaign{}, ErrCampaignAlreadySent
	}

	if req.CampaignName != nil {
		name := strings.TrimSpace(*req.CampaignName)
		if name == "" {
			return store.EmailCampaign{}, ErrCampaignNameRequired
		}
		campaign.CampaignName = name
	}
	if req.From != nil {
		campaign.From = strings.TrimSpace(*req.From)
	}
	if req.To != nil {
		campaign.To = normalizeContacts(*req.To)
	}
	if req.Template != nil {
		campaign.Template = *req.Template
	}
	if req.Subject != nil {
		campaign.Subject = *req.Subject
	}
	if req.Body != nil {
		campaign.Body = *req.Body
	}
	if err := p.validateContent(ctx, campaign.Subject, campaign.Body); err != nil {
		return store.EmailCampaign{}, err
	}
	updatedAt := p.now().UTC()
	campaign.UpdatedAt = &updatedAt

	updated, err := p.store.UpdateEmailCampaign(ctx, campaign)
	if err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			p.logger.Error(ctx, "failed to update email campaign", err)
		}
		return store.EmailCampaign{}, err
	}

	p.logger.Info(ctx, "email campaign updated")
	return updated, nil
}

// DeleteCampaign removes a campaign record. Already queued emails are not recalled.
func (p *EmailCampaignProcessor) DeleteCampaign(ctx context.Context, id string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id})

	if err := p.store.DeleteEmailCampaign(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete email campaign", err)
		return err
	}

	p.logger.Info(ctx, "email campaign deleted")
	return nil
}

// SendCampaign renders the campaign for every recipient, claims it, queues one
// notification per recipient and only then marks it sent. Recipients who
// registered are personalised from their latest submission.
//
// A send that fails part way leaves the campaign sending; sending it again
// queues only the recipients that are still missing.
func (p *EmailCampaignProcessor) SendCampaign(ctx context.Context, id string) (store.EmailCampaign, error) {
	campaign, err := p.GetCampaign(ctx, id)
	if err != nil {
		return store.EmailCampaign{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})

	if campaign.Status == store.EmailCampaignStatusSent {
		return store.EmailCampaign{}, ErrCampaignAlreadySent
	}
	if len(campaign.To) == 0 {
		return store.EmailCampaign{}, ErrNoRecipients
	}

	submissions, err := p.store.ListSubmissions(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list submissions", err)
		return store.EmailCampaign{}, err
	}
	participants := indexByEmail(submissions)

	// Render everything before claiming the campaign so a bad template sends nothing.
	notifications := make([]store.Notification, 0, len(campaign.To))
	for _, to := range campaign.To {
		vars := recipientVars(to, participants[strings.ToLower(to)])
		subject, err := p.renderer.Render(campaign.Subject, vars)
		if err != nil {
			return store.EmailCampaign{}, ErrInvalidCampaignContent
		}
		body, err := p.renderer.Render(campaign.Body, vars)
		if err != nil {
			return store.EmailCampaign{}, ErrInvalidCampaignContent
		}
		notifications = append(notifications, store.Notification{
			To:         to,
			Subject:    subject,
			Message:    body,
			CampaignID: campaign.ID,
			Type:       store.NotificationTypeCampaign,
		})
	}

	if campaign.Status == store.EmailCampaignStatusSending {
		p.logger.Warn(ctx, "resuming interrupted email campaign send")
	}
	campaign.Status = store.EmailCampaignStatusSending
	claimed, err := p.store.UpdateEmailCampaign(ctx, campaign)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return store.EmailCampaign{}, ErrCampaignAlreadySent
		}
		p.logger.Error(ctx, "failed to claim email campaign", err)
		return store.EmailCampaign{}, err
	}

	missing, err := p.notQueued(ctx, claimed.ID, notifications)
	if err != nil {
		p.logger.Error(ctx, "failed to list queued campaign emails", err)
		return store.EmailCampaign{}, err
	}
	for i, n := range missing {
		if _, err := p.store.EnqueueNotification(ctx, n); err != nil {
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "queued_before_failure", Value: len(notifications) - len(missing) + i},
			)
			p.logger.Error(ctx, "failed to queue campaign email", err)
			return store.EmailCampaign{}, fmt.Errorf("queue campaign email %d of %d: %w", i+1, len(missing), err)
		}
	}

	now := p.now().UTC()
	claimed.Status = store.EmailCampaignStatusSent
	claimed.SentAt = &now
	claimed.QueuedCount = len(notifications)
	sent, err := p.store.UpdateEmailCampaign(ctx, claimed)
	if err != nil {
		p.logger.Error(ctx, "failed to mark email campaign sent", err)
		return store.EmailCampaign{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "recipients", Value: len(notifications)},
		observability.Field{Key: "newly_queued", Value: len(missing)},
	)
	p.logger.Info(ctx, "email campaign queued")
	return sent, nil
}

// notQueued drops the notifications an earlier attempt already queued for
// campaignID. Repeated recipients are matched one queued email per entry.
func (p *EmailCampaignProcessor) notQueued(ctx context.Context, campaignID string, notifications []store.Notification) ([]store.Notification, error) {
	existing, err := p.store.ListCampaignNotifications(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return notifications, nil
	}

	queued := make(map[string]int, len(existing))
	for _, n := range existing {
		queued[strings.ToLower(n.To)]++
	}
	missing := make([]store.Notification, 0, len(notifications))
	for _, n := range notifications {
		key := strings.ToLower(n.To)
		if queued[key] > 0 {
			queued[key]--
			continue
		}
		missing = append(missing, n)
	}
	return missing, nil
}

func (p *EmailCampaignProcessor) validateContent(ctx context.Context, subject, body string) error {
	for _, source := range []string{subject, body} {
		if err := p.renderer.Validate(source); err != nil {
			p.logger.InfoWithError(ctx, "invalid campaign content", err)
			return ErrInvalidCampaignContent
		}
	}
	return nil
}

// indexByEmail keeps the newest submission per lowercased email.
// subs must be ordered newest first.
func indexByEmail(subs []store.Submission) map[string]store.Submission {
	out := make(map[string]store.Submission, len(subs))
	for _, s := range subs {
		key := strings.ToLower(s.Email)
		if _, seen := out[key]; !seen {
			out[key] = s
		}
	}
	return out
}

func recipientVars(email string, sub store.Submission) map[string]any {
	return map[string]any{
		"email":     email,
		"firstName": sub.FirstName,
		"lastName":  sub.LastName,
		"company":   sub.Company,
		"category":  sub.Category,
		"country":   sub.Country,
	}
}

// normalizeContacts trims, lowercases and dedupes addresses, dropping invalid ones
func normalizeContacts(contacts []string) []string {
	out := make([]string, 0, len(contacts))
	seen := make(map[string]bool, len(contacts))
	for _, c := range contacts {
		addr := strings.ToLower(strings.TrimSpace(c))
		if addr == "" || seen[addr] {
			continue
		}
		if _, err := mail.ParseAddress(addr); err != nil {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	return out
}
