package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidCategory    = errors.New("invalid submission category")
	ErrInvalidStatus      = errors.New("invalid submission status")
	ErrVIPDataRequired    = errors.New("vip data is required")
)

// Notification subjects sent on a review decision
const (
	ApprovalSubject  = "Qatar Boat Show 2025 - Application Approved"
	RejectionSubject = "Qatar Boat Show 2025 - Application Update"
)

const vipCompany = "VIP Guest"

type SubmissionProcessor struct {
	store      SubmissionStore
	promoCodes PromoCodeRedeemer
	logger     *observability.Logger
	now        func() time.Time
}

func New(store SubmissionStore, promoCodes PromoCodeRedeemer, logger *observability.Logger) SubmissionProcessor {
	return SubmissionProcessor{
		store:      store,
		promoCodes: promoCodes,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateSubmissionRequest represents a registration. ByAdmin is set when the
// caller holds an admin token; only admins may enter exhibitors.
type CreateSubmissionRequest struct {
	Category             string
	Email                string
	FirstName            string
	LastName             string
	Company              string
	JobTitle             string
	Website              string
	LinkedIn             string
	Phone                string
	Country              string
	BusinessCard         string
	BusinessCardPath     string
	VerificationDoc      string
	VerificationDocPath  string
	HasAccompanyingGuest *bool
	VIPData              *store.VIPData
	Status               string
	ByAdmin              bool
}

// CreateSubmission stores a new registration.
//
// Submissions start pending. VIP registrations redeem their promo code and
// are stored approved. Admins may store any category approved directly.
func (p *SubmissionProcessor) CreateSubmission(ctx context.Context, req CreateSubmissionRequest) (store.Submission, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "category", Value: req.Category},
		observability.Field{Key: "email", Value: req.Email},
	)

	if !store.ValidSubmissionCategory(req.Category) {
		return store.Submission{}, ErrInvalidCategory
	}
	if req.Category == store.SubmissionCategoryExhibitor && !req.ByAdmin {
		return store.Submission{}, ErrInvalidCategory
	}

	now := p.now().UTC()
	sub := store.Submission{
		Category:             req.Category,
		Email:                strings.TrimSpace(req.Email),
		FirstName:            strings.TrimSpace(req.FirstName),
		LastName:             strings.TrimSpace(req.LastName),
		Company:              strings.TrimSpace(req.Company),
		JobTitle:             req.JobTitle,
		Website:              req.Website,
		LinkedIn:             req.LinkedIn,
		Phone:                req.Phone,
		Country:              req.Country,
		BusinessCard:         req.BusinessCard,
		BusinessCardPath:     req.BusinessCardPath,
		VerificationDoc:      req.VerificationDoc,
		VerificationDocPath:  req.VerificationDocPath,
		HasAccompanyingGuest: req.HasAccompanyingGuest,
		VIPData:              req.VIPData,
		Status:               store.SubmissionStatusPending,
		SubmittedAt:          now,
	}

	switch {
	case req.Category == store.SubmissionCategoryVIP:
		if err := p.prepareVIP(ctx, &sub); err != nil {
			return store.Submission{}, err
		}
		sub.Status = store.SubmissionStatusApproved
		sub.ApprovedAt = &now
	case req.Status == "" || req.Status == store.SubmissionStatusPending:
	case req.Status == store.SubmissionStatusApproved && req.ByAdmin:
		sub.Status = store.SubmissionStatusApproved
		sub.ApprovedAt = &now
	default:
		return store.Submission{}, ErrInvalidStatus
	}

	if sub.BusinessCard == "" && req.ByAdmin {
		sub.BusinessCard = store.BusinessCardManualEntry
	}

	created, err := p.store.CreateSubmission(ctx, sub)
	if err != nil {
		p.logger.Error(ctx, "failed to create submission", err)
		if sub.Category == store.SubmissionCategoryVIP {
			if releaseErr := p.promoCodes.Release(ctx, sub.VIPData.PromoCode); releaseErr != nil {
				p.logger.Error(ctx, "failed to release promo code after create failure", releaseErr)
			}
		}
		return store.Submission{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "submission_id", Value: created.ID},
		observability.Field{Key: "status", Value: created.Status},
	)
	p.logger.Info(ctx, "submission created")
	return created, nil
}

// prepareVIP redeems the promo code and fills the fields a VIP form leaves out
func (p *SubmissionProcessor) prepareVIP(ctx context.Context, sub *store.Submission) error {
	if sub.VIPData == nil {
		return ErrVIPDataRequired
	}

	promo, err := p.promoCodes.Redeem(ctx, sub.VIPData.PromoCode)
	if err != nil {
		return err
	}
	sub.VIPData.PromoCode = promo.Code

	main := sub.VIPData.MainGuest
	if sub.Email == "" {
		sub.Email = main.Email
	}
	if sub.FirstName == "" {
		sub.FirstName = main.FirstName
	}
	if sub.LastName == "" {
		sub.LastName = main.LastName
	}
	if sub.Country == "" {
		sub.Country = main.Country
	}
	if sub.Phone == "" && main.PhoneNumber != "" {
		sub.Phone = strings.TrimSpace(main.CountryCode + " " + main.PhoneNumber)
	}
	if sub.Company == "" {
		sub.Company = vipCompany
	}
	if sub.BusinessCard == "" {
		sub.BusinessCard = store.BusinessCardVIPRegistration
	}
	if sub.HasAccompanyingGuest == nil {
		hasGuest := sub.VIPData.AccompanyingGuest != nil
		sub.HasAccompanyingGuest = &hasGuest
	}
	return nil
}

// GetSubmission returns one submission by bare or prefixed id
func (p *SubmissionProcessor) GetSubmission(ctx context.Context, id string) (store.Submission, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "submission_id", Value: id})

	sub, err := p.store.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Submission{}, ErrSubmissionNotFound
		}
		p.logger.Error(ctx, "failed to get submission", err)
		return store.Submission{}, err
	}
	return sub, nil
}

// ListSubmissionsFilter narrows ListSubmissions. Empty fields match everything.
type ListSubmissionsFilter struct {
	Category string
	Status   string
}

// ListSubmissions returns submissions newest first
func (p *SubmissionProcessor) ListSubmissions(ctx context.Context, filter ListSubmissionsFilter) ([]store.Submission, error) {
	if filter.Category != "" && !store.ValidSubmissionCategory(filter.Category) {
		return nil, ErrInvalidCategory
	}
	if filter.Status != "" && !store.ValidSubmissionStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}

	subs, err := p.store.ListSubmissions(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list submissions", err)
		return nil, err
	}

	out := make([]store.Submission, 0, len(subs))
	for _, s := range subs {
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Approve marks a submission approved and queues the approval email
func (p *SubmissionProcessor) Approve(ctx context.Context, id, message string) (store.Submission, error) {
	return p.decide(ctx, id, message, store.SubmissionStatusApproved)
}

// Reject marks a submission rejected and queues the update email
func (p *SubmissionProcessor) Reject(ctx context.Context, id, message string) (store.Submission, error) {
	return p.decide(ctx, id, message, store.SubmissionStatusRejected)
}

func (p *SubmissionProcessor) decide(ctx context.Context, id, message, status string) (store.Submission, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "submission_id", Value: id},
		observability.Field{Key: "decision", Value: status},
	)

	sub, err := p.GetSubmission(ctx, id)
	if err != nil {
		return store.Submission{}, err
	}
	if sub.Status != store.SubmissionStatusPending {
		ctx = observability.WithFields(ctx, observability.Field{Key: "previous_status", Value: sub.Status})
		p.logger.Warn(ctx, "submission already decided, applying new decision")
	}

	body := message
	if strings.TrimSpace(body) == "" {
		body = fmt.Sprintf("Your registration for Qatar Boat Show 2025 has been %s.", status)
	}

	now := p.now().UTC()
	notification := store.Notification{
		To:           sub.Email,
		Message:      body,
		SubmissionID: sub.ID,
	}
	sub.Status = status
	if status == store.SubmissionStatusApproved {
		sub.ApprovedAt = &now
		sub.ApprovalMessage = message
		notification.Subject = ApprovalSubject
		notification.Type = store.NotificationTypeApproval
	} else {
		sub.RejectedAt = &now
		sub.RejectionMessage = message
		notification.Subject = RejectionSubject
		notification.Type = store.NotificationTypeRejection
	}

	// Queue before saving: a decision is never stored without its email.
	// Repeating a decision re-queues the email.
	queued, err := p.store.EnqueueNotification(ctx, notification)
	if err != nil {
		p.logger.Error(ctx, "failed to queue decision email", err)
		return store.Submission{}, err
	}

	updated, err := p.store.UpdateSubmission(ctx, sub)
	if err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			p.logger.Error(ctx, "failed to update submission", err)
		}
		if withdrawErr := p.store.DeleteNotification(ctx, queued.ID); withdrawErr != nil {
			p.logger.Error(ctx, "failed to withdraw decision email", withdrawErr)
		}
		return store.Submission{}, err
	}

	p.logger.Info(ctx, "submission decided and email queued")
	return updated, nil
}

// UpdateSubmissionRequest is a shallow patch. Nil fields are left unchanged.
type UpdateSubmissionRequest struct {
	Category             *string
	Email                *string
	FirstName            *string
	LastName             *string
	Company              *string
	JobTitle             *string
	Website              *string
	LinkedIn             *string
	Phone                *string
	Country              *string
	BusinessCard         *string
	BusinessCardPath     *string
	VerificationDoc      *string
	VerificationDocPath  *string
	HasAccompanyingGuest *bool
	VIPData              *store.VIPData
	Status               *string
	ApprovalMessage      *string
	RejectionMessage     *string
}

// UpdateSubmission applies req to an existing submission
func (p *SubmissionProcessor) UpdateSubmission(ctx context.Context, id string, req UpdateSubmissionRequest) (store.Submission, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "submission_id", Value: id})

	if req.Category != nil && !store.ValidSubmissionCategory(*req.Category) {
		return store.Submission{}, ErrInvalidCategory
	}
	if req.Status != nil && !store.ValidSubmissionStatus(*req.Status) {
		return store.Submission{}, ErrInvalidStatus
	}

	sub, err := p.GetSubmission(ctx, id)
	if err != nil {
		return store.Submission{}, err
	}

	setString(&sub.Category, req.Category)
	setString(&sub.Email, req.Email)
	setString(&sub.FirstName, req.FirstName)
	setString(&sub.LastName, req.LastName)
	setString(&sub.Company, req.Company)
	setString(&sub.JobTitle, req.JobTitle)
	setString(&sub.Website, req.Website)
	setString(&sub.LinkedIn, req.LinkedIn)
	setString(&sub.Phone, req.Phone)
	setString(&sub.Country, req.Country)
	setString(&sub.BusinessCard, req.BusinessCard)
	setString(&sub.BusinessCardPath, req.BusinessCardPath)
	setString(&sub.VerificationDoc, req.VerificationDoc)
	setString(&sub.VerificationDocPath, req.VerificationDocPath)
	setString(&sub.Status, req.Status)
	setString(&sub.ApprovalMessage, req.ApprovalMessage)
	setString(&sub.RejectionMessage, req.RejectionMessage)
	if req.HasAccompanyingGuest != nil {
		sub.HasAccompanyingGuest = req.HasAccompanyingGuest
	}
	if req.VIPData != nil {
		sub.VIPData = req.VIPData
	}
	now := p.now().UTC()
	sub.UpdatedAt = &now

	updated, err := p.store.UpdateSubmission(ctx, sub)
	if err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			p.logger.Error(ctx, "failed to update submission", err)
		}
		return store.Submission{}, err
	}

	p.logger.Info(ctx, "submission updated")
	return updated, nil
}

// DeleteSubmission removes a submission
func (p *SubmissionProcessor) DeleteSubmission(ctx context.Context, id string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "submission_id", Value: id})

	if err := p.store.DeleteSubmission(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		p.logger.Error(ctx, "failed to delete submission", err)
		return err
	}

	p.logger.Info(ctx, "submission deleted")
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
