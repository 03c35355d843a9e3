package processor

import (
	"boatshow-server/internal/store"
	"context"
)

// PromoCodeStore defines the store operations required by PromoCodeProcessor
type PromoCodeStore interface {
	CreatePromoCode(ctx context.Context, promo store.PromoCode) (store.PromoCode, error)
	GetPromoCode(ctx context.Context, code string) (store.PromoCode, error)
	ListPromoCodes(ctx context.Context) ([]store.PromoCode, error)
	UpdatePromoCode(ctx context.Context, promo store.PromoCode) (store.PromoCode, error)
	DeletePromoCode(ctx context.Context, code string) error
}
