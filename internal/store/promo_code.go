package store

import (
	"context"
	"fmt"
	"strings"
)

// NormalizePromoCode trims and upper-cases a code
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PromoCodeKey returns the store key for a code, case-insensitively
func PromoCodeKey(code string) string {
	return PrefixPromoCode + NormalizePromoCode(strings.TrimPrefix(code, PrefixPromoCode))
}

// CreatePromoCode stores a new code. Returns ErrAlreadyExists if the code is taken.
func (s *Store) CreatePromoCode(ctx context.Context, promo PromoCode) (PromoCode, error) {
	promo.Code = NormalizePromoCode(promo.Code)
	version, err := s.insert(ctx, PromoCodeKey(promo.Code), promo)
	if err != nil {
		return PromoCode{}, err
	}
	promo.Version = version
	return promo, nil
}

// GetPromoCode retrieves a promo code, case-insensitively
func (s *Store) GetPromoCode(ctx context.Context, code string) (PromoCode, error) {
	var promo PromoCode
	version, err := s.get(ctx, PromoCodeKey(code), &promo)
	if err != nil {
		return PromoCode{}, err
	}
	promo.Version = version
	return promo, nil
}

// ListPromoCodes returns every promo code ordered by code
func (s *Store) ListPromoCodes(ctx context.Context) ([]PromoCode, error) {
	codes, err := list(ctx, s.kv, PrefixPromoCode, func(p *PromoCode, v int64) { p.Version = v })
	if err != nil {
		return nil, fmt.Errorf("failed to list promo codes: %w", err)
	}
	return codes, nil
}

// UpdatePromoCode writes promo if it has not changed since it was read
func (s *Store) UpdatePromoCode(ctx context.Context, promo PromoCode) (PromoCode, error) {
	version, err := s.put(ctx, PromoCodeKey(promo.Code), promo, promo.Version)
	if err != nil {
		return PromoCode{}, err
	}
	promo.Version = version
	return promo, nil
}

// DeletePromoCode removes a promo code
func (s *Store) DeletePromoCode(ctx context.Context, code string) error {
	return s.kv.Delete(ctx, PromoCodeKey(code))
}
