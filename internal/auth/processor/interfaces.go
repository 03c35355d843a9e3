package processor

import (
	"boatshow-server/internal/store"
	"context"
)

// AdminUserStore defines the store operations required by AuthProcessor
type AdminUserStore interface {
	GetAdminUser(ctx context.Context, id string) (store.AdminUser, error)
	GetAdminUserByUsername(ctx context.Context, username string) (store.AdminUser, error)
}
