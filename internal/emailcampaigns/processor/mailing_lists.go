package processor

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"errors"
	"strings"
)

var (
	ErrMailingListNotFound     = errors.New("mailing list not found")
	ErrMailingListNameRequired = errors.New("mailing list name is required")
	ErrDefaultListReadOnly     = errors.New("default mailing lists are read-only")
)

// Default list ids. Default lists are computed from approved submissions on every read.
const (
	DefaultListAllApproved = "default:all-approved"
	DefaultListVIP         = "default:vip"
	DefaultListMedia       = "default:media"
)

type defaultList struct {
	id          string
	name        string
	description string
	category    string
}

var defaultLists = []defaultList{
	{id: DefaultListAllApproved, name: "All Approved Participants", description: "All approved registrations"},
	{id: DefaultListVIP, name: "VIP Guests", description: "VIP category participants", category: store.SubmissionCategoryVIP},
	{id: DefaultListMedia, name: "Media Personnel", description: "Media category participants", category: store.SubmissionCategoryMedia},
}

// ListMailingLists returns the default lists followed by stored custom lists
func (p *EmailCampaignProcessor) ListMailingLists(ctx context.Context) ([]store.MailingList, error) {
	submissions, err := p.store.ListSubmissions(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list submissions", err)
		return nil, err
	}
	custom, err := p.store.ListMailingLists(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list mailing lists", err)
		return nil, err
	}

	lists := make([]store.MailingList, 0, len(defaultLists)+len(custom))
	for _, d := range defaultLists {
		lists = append(lists, p.buildDefaultList(d, submissions))
	}
	return append(lists, custom...), nil
}

// GetMailingList resolves a default or stored list
func (p *EmailCampaignProcessor) GetMailingList(ctx context.Context, id string) (store.MailingList, error) {
	for _, d := range defaultLists {
		if d.id == id {
			submissions, err := p.store.ListSubmissions(ctx)
			if err != nil {
				p.logger.Error(ctx, "failed to list submissions", err)
				return store.MailingList{}, err
			}
			return p.buildDefaultList(d, submissions), nil
		}
	}

	ml, err := p.store.GetMailingList(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.MailingList{}, ErrMailingListNotFound
		}
		p.logger.Error(ctx, "failed to get mailing list", err)
		return store.MailingList{}, err
	}
	return ml, nil
}

// CreateMailingListRequest represents a request to create a custom mailing list
type CreateMailingListRequest struct {
	Name        string
	Description string
	Contacts    []string
}

func (p *EmailCampaignProcessor) CreateMailingList(ctx context.Context, req CreateMailingListRequest) (store.MailingList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return store.MailingList{}, ErrMailingListNameRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "mailing_list", Value: name})

	contacts := normalizeContacts(req.Contacts)
	if len(contacts) == 0 {
		return store.MailingList{}, ErrNoRecipients
	}

	ml, err := p.store.CreateMailingList(ctx, store.MailingList{
		Name:        name,
		Description: req.Description,
		Contacts:    contacts,
		CreatedAt:   p.now().UTC(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create mailing list", err)
		return store.MailingList{}, err
	}

	p.logger.Info(ctx, "mailing list created")
	return ml, nil
}

func (p *EmailCampaignProcessor) DeleteMailingList(ctx context.Context, id string) error {
	for _, d := range defaultLists {
		if d.id == id {
			return ErrDefaultListReadOnly
		}
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "mailing_list_id", Value: id})

	if err := p.store.DeleteMailingList(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMailingListNotFound
		}
		p.logger.Error(ctx, "failed to delete mailing list", err)
		return err
	}

	p.logger.Info(ctx, "mailing list deleted")
	return nil
}

func (p *EmailCampaignProcessor) buildDefaultList(d defaultList, submissions []store.Submission) store.MailingList {
	emails := make([]string, 0)
	for _, s := range submissions {
		if s.Status != store.SubmissionStatusApproved {
			continue
		}
		if d.category != "" && s.Category != d.category {
			continue
		}
		emails = append(emails, s.Email)
	}
	return store.MailingList{
		ID:          d.id,
		Name:        d.name,
		Description: d.description,
		Contacts:    normalizeContacts(emails),
		Default:     true,
		CreatedAt:   p.now().UTC(),
	}
}
