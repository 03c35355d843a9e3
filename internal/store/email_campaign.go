package store

import (
	"context"
	"fmt"
)

// EmailCampaignKey normalizes a bare or prefixed campaign id to its store key
func EmailCampaignKey(id string) string {
	return keyFor(PrefixEmailCampaign, id)
}

// CreateEmailCampaign stores a new campaign under a fresh time-based id
func (s *Store) CreateEmailCampaign(ctx context.Context, campaign EmailCampaign) (EmailCampaign, error) {
	id, version, err := s.insertWithTimeID(ctx, PrefixEmailCampaign, func(id string) any {
		campaign.ID = id
		return campaign
	})
	if err != nil {
		return EmailCampaign{}, fmt.Errorf("failed to create email campaign: %w", err)
	}
	campaign.ID = id
	campaign.Version = version
	return campaign, nil
}

// GetEmailCampaign retrieves a campaign by bare or prefixed id
func (s *Store) GetEmailCampaign(ctx context.Context, id string) (EmailCampaign, error) {
	var campaign EmailCampaign
	version, err := s.get(ctx, EmailCampaignKey(id), &campaign)
	if err != nil {
		return EmailCampaign{}, err
	}
	campaign.Version = version
	return campaign, nil
}

// ListEmailCampaigns returns every campaign ordered by id
func (s *Store) ListEmailCampaigns(ctx context.Context) ([]EmailCampaign, error) {
	campaigns, err := list(ctx, s.kv, PrefixEmailCampaign, func(c *EmailCampaign, v int64) { c.Version = v })
	if err != nil {
		return nil, fmt.Errorf("failed to list email campaigns: %w", err)
	}
	return campaigns, nil
}

// UpdateEmailCampaign writes campaign if it has not changed since it was read
func (s *Store) UpdateEmailCampaign(ctx context.Context, campaign EmailCampaign) (EmailCampaign, error) {
	version, err := s.put(ctx, EmailCampaignKey(campaign.ID), campaign, campaign.Version)
	if err != nil {
		return EmailCampaign{}, err
	}
	campaign.Version = version
	return campaign, nil
}

// DeleteEmailCampaign removes a campaign
func (s *Store) DeleteEmailCampaign(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, EmailCampaignKey(id))
}
