package processor

import (
	"boatshow-server/internal/store"
	"context"
)

// CampaignStore defines the store operations required by EmailCampaignProcessor
type CampaignStore interface {
	CreateEmailCampaign(ctx context.Context, campaign store.EmailCampaign) (store.EmailCampaign, error)
	GetEmailCampaign(ctx context.Context, id string) (store.EmailCampaign, error)
	ListEmailCampaigns(ctx context.Context) ([]store.EmailCampaign, error)
	UpdateEmailCampaign(ctx context.Context, campaign store.EmailCampaign) (store.EmailCampaign, error)
	DeleteEmailCampaign(ctx context.Context, id string) error
	CreateMailingList(ctx context.Context, ml store.MailingList) (store.MailingList, error)
	GetMailingList(ctx context.Context, id string) (store.MailingList, error)
	ListMailingLists(ctx context.Context) ([]store.MailingList, error)
	DeleteMailingList(ctx context.Context, id string) error
	ListSubmissions(ctx context.Context) ([]store.Submission, error)
	EnqueueNotification(ctx context.Context, n store.Notification) (store.Notification, error)
	ListCampaignNotifications(ctx context.Context, campaignID string) ([]store.Notification, error)
}

// TemplateRenderer parses and renders Liquid sources
type TemplateRenderer interface {
	Validate(source string) error
	Render(source string, vars map[string]any) (string, error)
}
