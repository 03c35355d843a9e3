package processor

import (
	"boatshow-server/internal/observability"
	"context"
	"errors"
	"time"
)

// DefaultPromoCode is a code created on first start
type DefaultPromoCode struct {
	Code        string
	Description string
	MaxUses     int
}

var DefaultPromoCodes = []DefaultPromoCode{
	{Code: "VIP2025QBS", Description: "VIP Access for Qatar Boat Show 2025", MaxUses: 100},
	{Code: "QBSVIP001", Description: "Exclusive VIP Pass", MaxUses: 50},
	{Code: "ELITE2025", Description: "Elite Membership Access", MaxUses: 25},
	{Code: "GOLDTICKET", Description: "Gold Tier VIP Access", MaxUses: 75},
}

// EnsureDefaultPromoCodes seeds DefaultPromoCodes, expiring at the last second
// of the current year, when no promo code exists. It returns how many were created.
func (p *PromoCodeProcessor) EnsureDefaultPromoCodes(ctx context.Context) (int, error) {
	existing, err := p.store.ListPromoCodes(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list promo codes", err)
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := p.now().UTC()
	expiresAt := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, time.UTC)

	created := 0
	for _, d := range DefaultPromoCodes {
		_, err := p.CreatePromoCode(ctx, CreatePromoCodeRequest{
			Code:        d.Code,
			Description: d.Description,
			ExpiresAt:   &expiresAt,
			MaxUses:     d.MaxUses,
		})
		if err != nil {
			// another instance seeded first
			if errors.Is(err, ErrPromoCodeExists) {
				continue
			}
			return created, err
		}
		created++
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "created", Value: created})
	p.logger.Info(ctx, "seeded default promo codes")
	return created, nil
}
