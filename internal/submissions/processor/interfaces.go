package processor

import (
	"boatshow-server/internal/store"
	"context"
)

// SubmissionStore defines the store operations required by SubmissionProcessor
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub store.Submission) (store.Submission, error)
	GetSubmission(ctx context.Context, id string) (store.Submission, error)
	ListSubmissions(ctx context.Context) ([]store.Submission, error)
	UpdateSubmission(ctx context.Context, sub store.Submission) (store.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
	EnqueueNotification(ctx context.Context, n store.Notification) (store.Notification, error)
	DeleteNotification(ctx context.Context, id string) error
}

// PromoCodeRedeemer consumes one use of a VIP promo code, and gives it back
// when the registration is not stored
type PromoCodeRedeemer interface {
	Redeem(ctx context.Context, code string) (store.PromoCode, error)
	Release(ctx context.Context, code string) error
}
