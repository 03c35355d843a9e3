package notifications

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=notifications

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"boatshow-server/internal/workers"
	"context"
	"errors"
	"fmt"
	"time"
)

// Dispatcher turns queued notifications into worker jobs and delivers them.
// It is both the JobSource and the JobProcessor of a workers.Poller.
type Dispatcher struct {
	store     NotificationStore
	deliverer Deliverer
	logger    *observability.Logger
	now       func() time.Time
}

func NewDispatcher(store NotificationStore, deliverer Deliverer, logger *observability.Logger) *Dispatcher {
	return &Dispatcher{
		store:     store,
		deliverer: deliverer,
		logger:    logger,
		now:       time.Now,
	}
}

func (d *Dispatcher) Name() string {
	return "notifications"
}

// Fetch returns up to limit queued notifications as jobs, oldest first
func (d *Dispatcher) Fetch(ctx context.Context, limit int) ([]workers.Job, error) {
	queued, err := d.store.ListQueuedNotifications(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued notifications: %w", err)
	}

	jobs := make([]workers.Job, 0, len(queued))
	for _, n := range queued {
		jobs = append(jobs, workers.Job{ID: n.ID, Type: n.Type})
	}
	return jobs, nil
}

// Process delivers the notification named by job.ID and records the outcome.
// A notification that is no longer queued is skipped. A delivery failure is
// recorded as failed and not retried.
func (d *Dispatcher) Process(ctx context.Context, job workers.Job) error {
	n, err := d.store.GetNotification(ctx, job.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			d.logger.Warn(ctx, "queued notification disappeared before delivery")
			return nil
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n.Status != store.NotificationStatusQueued {
		return nil
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_type", Value: n.Type},
		observability.Field{Key: "submission_id", Value: n.SubmissionID},
		observability.Field{Key: "campaign_id", Value: n.CampaignID},
	)

	messageID, deliverErr := d.deliverer.Deliver(ctx, n, d.firstName(ctx, n))
	if deliverErr != nil {
		n.Status = store.NotificationStatusFailed
		n.Error = deliverErr.Error()
	} else {
		sentAt := d.now().UTC()
		n.Status = store.NotificationStatusSent
		n.ProviderMessageID = messageID
		n.Error = ""
		n.SentAt = &sentAt
	}

	if _, err := d.store.UpdateNotification(ctx, n); err != nil {
		// The email may have gone out; a conflict means another dispatcher
		// already recorded this notification.
		if errors.Is(err, store.ErrVersionConflict) {
			d.logger.Warn(ctx, "notification was updated concurrently")
			return nil
		}
		d.logger.Error(ctx, "failed to record notification outcome", err)
		return fmt.Errorf("failed to update notification: %w", err)
	}

	if deliverErr != nil {
		return fmt.Errorf("failed to deliver notification: %w", deliverErr)
	}
	d.logger.Info(ctx, "notification delivered")
	return nil
}

// firstName personalises decision emails. A missing submission is not an error.
func (d *Dispatcher) firstName(ctx context.Context, n store.Notification) string {
	if n.SubmissionID == "" {
		return ""
	}
	sub, err := d.store.GetSubmission(ctx, n.SubmissionID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			d.logger.InfoWithError(ctx, "failed to load submission for notification", err)
		}
		return ""
	}
	return sub.FirstName
}
