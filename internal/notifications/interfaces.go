package notifications

import (
	"boatshow-server/internal/store"
	"context"
)

// NotificationStore defines the store operations required by Dispatcher
type NotificationStore interface {
	ListQueuedNotifications(ctx context.Context, limit int) ([]store.Notification, error)
	GetNotification(ctx context.Context, id string) (store.Notification, error)
	UpdateNotification(ctx context.Context, n store.Notification) (store.Notification, error)
	GetSubmission(ctx context.Context, id string) (store.Submission, error)
}

// Deliverer sends one notification through the configured mail provider
type Deliverer interface {
	Deliver(ctx context.Context, n store.Notification, firstName string) (string, error)
}
