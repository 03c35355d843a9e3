package store

import (
	"context"
	"fmt"
)

// EnqueueNotification stores a queued email under a fresh email-queue id
func (s *Store) EnqueueNotification(ctx context.Context, n Notification) (Notification, error) {
	n.Status = NotificationStatusQueued
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now().UTC()
	}
	id, version, err := s.insertWithTimeID(ctx, PrefixNotification, func(id string) any {
		n.ID = id
		return n
	})
	if err != nil {
		return Notification{}, fmt.Errorf("failed to enqueue notification: %w", err)
	}
	n.ID = id
	n.Version = version
	return n, nil
}

// GetNotification retrieves a notification by bare or prefixed id
func (s *Store) GetNotification(ctx context.Context, id string) (Notification, error) {
	var n Notification
	version, err := s.get(ctx, keyFor(PrefixNotification, id), &n)
	if err != nil {
		return Notification{}, err
	}
	n.Version = version
	return n, nil
}

// ListNotifications returns every notification in queue order
func (s *Store) ListNotifications(ctx context.Context) ([]Notification, error) {
	notifications, err := list(ctx, s.kv, PrefixNotification, func(n *Notification, v int64) { n.Version = v })
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// ListQueuedNotifications returns up to limit queued notifications, oldest first.
// A limit of 0 or less returns all of them.
func (s *Store) ListQueuedNotifications(ctx context.Context, limit int) ([]Notification, error) {
	all, err := s.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	queued := make([]Notification, 0)
	for _, n := range all {
		if n.Status != NotificationStatusQueued {
			continue
		}
		queued = append(queued, n)
		if limit > 0 && len(queued) == limit {
			break
		}
	}
	return queued, nil
}

// UpdateNotification writes n if it has not changed since it was read
func (s *Store) UpdateNotification(ctx context.Context, n Notification) (Notification, error) {
	version, err := s.put(ctx, keyFor(PrefixNotification, n.ID), n, n.Version)
	if err != nil {
		return Notification{}, err
	}
	n.Version = version
	return n, nil
}

// ListCampaignNotifications returns the notifications queued for one campaign
func (s *Store) ListCampaignNotifications(ctx context.Context, campaignID string) ([]Notification, error) {
	all, err := s.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0)
	for _, n := range all {
		if n.CampaignID == campaignID {
			out = append(out, n)
		}
	}
	return out, nil
}

// DeleteNotification removes a notification, typically one withdrawn before dispatch
func (s *Store) DeleteNotification(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, keyFor(PrefixNotification, id))
}
