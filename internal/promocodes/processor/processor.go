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
	ErrPromoCodeRequired = errors.New("promo code is required")
	ErrPromoCodeNotFound = errors.New("promo code not found")
	ErrPromoCodeExists   = errors.New("promo code already exists")
	ErrInvalidMaxUses    = errors.New("max uses must not be negative")
	ErrInvalidUsedCount  = errors.New("used count must not be negative")
	ErrInvalidImportFile = errors.New("invalid promo code import file")
)

// Reasons a promo code is refused, returned verbatim to clients
const (
	ReasonInvalid   = "Invalid promo code"
	ReasonExpired   = "Promo code has expired"
	ReasonExhausted = "Promo code has reached maximum uses"
	ReasonInactive  = "Promo code is not active"
)

// RejectedError is returned by Redeem when the code cannot be used
type RejectedError struct {
	Code   string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("promo code %s rejected: %s", e.Code, e.Reason)
}

// ValidationResult is the outcome of checking a code without using it
type ValidationResult struct {
	Valid     bool             `json:"valid"`
	PromoCode *store.PromoCode `json:"promoCode,omitempty"`
	Reason    string           `json:"error,omitempty"`
}

type PromoCodeProcessor struct {
	store  PromoCodeStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store PromoCodeStore, logger *observability.Logger) PromoCodeProcessor {
	return PromoCodeProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// rejectionReason returns why promo cannot be used at now, or "" if it can.
// Checks run in a fixed order: expiry, capacity, active flag.
func rejectionReason(promo store.PromoCode, now time.Time) string {
	if promo.ExpiresAt != nil && promo.ExpiresAt.Before(now) {
		return ReasonExpired
	}
	if promo.MaxUses > 0 && promo.UsedCount >= promo.MaxUses {
		return ReasonExhausted
	}
	if !promo.Active {
		return ReasonInactive
	}
	return ""
}

// Validate checks whether code can currently be used. It never mutates the store.
func (p *PromoCodeProcessor) Validate(ctx context.Context, code string) (ValidationResult, error) {
	code = store.NormalizePromoCode(code)
	if code == "" {
		return ValidationResult{}, ErrPromoCodeRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "promo_code", Value: code})

	promo, err := p.store.GetPromoCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ValidationResult{Valid: false, Reason: ReasonInvalid}, nil
		}
		p.logger.Error(ctx, "failed to get promo code", err)
		return ValidationResult{}, err
	}

	if reason := rejectionReason(promo, p.now()); reason != "" {
		return ValidationResult{Valid: false, Reason: reason}, nil
	}
	return ValidationResult{Valid: true, PromoCode: &promo}, nil
}

// Redeem validates code and consumes one use of it. A concurrent redemption of
// the same code surfaces as store.ErrVersionConflict.
func (p *PromoCodeProcessor) Redeem(ctx context.Context, code string) (store.PromoCode, error) {
	code = store.NormalizePromoCode(code)
	if code == "" {
		return store.PromoCode{}, ErrPromoCodeRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "promo_code", Value: code})

	promo, err := p.store.GetPromoCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.PromoCode{}, &RejectedError{Code: code, Reason: ReasonInvalid}
		}
		p.logger.Error(ctx, "failed to get promo code", err)
		return store.PromoCode{}, err
	}

	now := p.now()
	if reason := rejectionReason(promo, now); reason != "" {
		return store.PromoCode{}, &RejectedError{Code: code, Reason: reason}
	}

	promo.UsedCount++
	updatedAt := now.UTC()
	promo.UpdatedAt = &updatedAt

	redeemed, err := p.store.UpdatePromoCode(ctx, promo)
	if err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			p.logger.Error(ctx, "failed to redeem promo code", err)
		}
		return store.PromoCode{}, err
	}

	p.logger.Info(ctx, "promo code redeemed")
	return redeemed, nil
}

const releaseAttempts = 3

// Release gives back one use consumed by Redeem when the registration it paid
// for could not be stored. Concurrent redemptions are retried against.
func (p *PromoCodeProcessor) Release(ctx context.Context, code string) error {
	code = store.NormalizePromoCode(code)
	ctx = observability.WithFields(ctx, observability.Field{Key: "promo_code", Value: code})

	var err error
	for attempt := 0; attempt < releaseAttempts; attempt++ {
		var promo store.PromoCode
		promo, err = p.store.GetPromoCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPromoCodeNotFound
			}
			p.logger.Error(ctx, "failed to get promo code", err)
			return err
		}
		if promo.UsedCount == 0 {
			return nil
		}

		promo.UsedCount--
		updatedAt := p.now().UTC()
		promo.UpdatedAt = &updatedAt
		if _, err = p.store.UpdatePromoCode(ctx, promo); err == nil {
			p.logger.Info(ctx, "promo code use released")
			return nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			break
		}
	}

	p.logger.Error(ctx, "failed to release promo code use", err)
	return err
}

// CreatePromoCodeRequest represents a request to create a promo code
type CreatePromoCodeRequest struct {
	Code        string
	Description string
	ExpiresAt   *time.Time
	MaxUses     int
	Active      *bool
}

// CreatePromoCode stores a new code with no uses. Codes are unique case-insensitively.
func (p *PromoCodeProcessor) CreatePromoCode(ctx context.Context, req CreatePromoCodeRequest) (store.PromoCode, error) {
	code := store.NormalizePromoCode(req.Code)
	if code == "" {
		return store.PromoCode{}, ErrPromoCodeRequired
	}
	if req.MaxUses < 0 {
		return store.PromoCode{}, ErrInvalidMaxUses
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "promo_code", Value: code})

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	promo, err := p.store.CreatePromoCode(ctx, store.PromoCode{
		Code:        code,
		Description: req.Description,
		ExpiresAt:   utcPtr(req.ExpiresAt),
		MaxUses:     req.MaxUses,
		UsedCount:   0,
		Active:      active,
		CreatedAt:   p.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.PromoCode{}, ErrPromoCodeExists
		}
		p.logger.Error(ctx, "failed to create promo code", err)
		return store.PromoCode{}, err
	}

	p.logger.Info(ctx, "promo code created")
	return promo, nil
}

// ListPromoCodes returns every promo code
func (p *PromoCodeProcessor) ListPromoCodes(ctx context.Context) ([]store.PromoCode, error) {
	codes, err := p.store.ListPromoCodes(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list promo codes", err)
		return nil, err
	}
	return codes, nil
}

// UpdatePromoCodeRequest is a partial update. Nil fields are left unchanged.
type UpdatePromoCodeRequest struct {
	Description  *string
	ExpiresAt    *time.Time
	ClearExpires bool
	MaxUses      *int
	UsedCount    *int
	Active       *bool
}

// UpdatePromoCode applies req to an existing code. The code itself never changes.
func (p *PromoCodeProcessor) UpdatePromoCode(ctx context.Context, code string, req UpdatePromoCodeRequest) (store.PromoCode, error) {
	code = store.NormalizePromoCode(code)
	ctx = observability.WithFields(ctx, observability.Field{Key: "promo_code", Value: code})

	if req.MaxUses != nil && *req.MaxUses < 0 {
		return store.PromoCode{}, ErrInvalidMaxUses
	}
	if req.UsedCount != nil && *req.UsedCount < 0 {
		return store.PromoCode{}, ErrInvalidUsedCount
	}

	promo, err := p.store.GetPromoCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.PromoCode{}, ErrPromoCodeNotFound
		}
		p.logger.Error(ctx, "failed to get promo code", err)
		return store.PromoCode{}, err
	}

	if req.Description != nil {
		promo.Description = *req.Description
	}
	if req.ClearExpires {
		promo.ExpiresAt = nil
	} else if req.ExpiresAt != nil {
		promo.ExpiresAt = utcPtr(req.ExpiresAt)
	}
	if req.MaxUses != nil {
		promo.MaxUses = *req.MaxUses
	}
	if req.UsedCount != nil {
		promo.UsedCount = *req.UsedCount
	}
	if req.Active != nil {
		promo.Active = *req.Active
	}
	updatedAt := p.now().UTC()
	promo.UpdatedAt = &updatedAt

	updated, err := p.store.UpdatePromoCode(ctx, promo)
	if err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			p.logger.Error(ctx, "failed to update promo code", err)
		}
		return store.PromoCode{}, err
	}

	p.logger.Info(ctx, "promo code updated")
	return updated, nil
}

// DeletePromoCode removes a code
func (p *PromoCodeProcessor) DeletePromoCode(ctx context.Context, code string) error {
	code = store.NormalizePromoCode(code)
	ctx = observability.WithFields(ctx, observability.Field{Key: "promo_code", Value: code})

	if err := p.store.DeletePromoCode(ctx, code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPromoCodeNotFound
		}
		p.logger.Error(ctx, "failed to delete promo code", err)
		return err
	}

	p.logger.Info(ctx, "promo code deleted")
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// endOfDay returns 23:59:59 UTC on the date in s (YYYY-MM-DD)
func endOfDay(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC), nil
}
