package processor

import (
	"boatshow-server/internal/store"
	"context"
)

// AdminUserStore defines the store operations required by AdminUserProcessor
type AdminUserStore interface {
	CreateAdminUser(ctx context.Context, user store.AdminUser) (store.AdminUser, error)
	GetAdminUser(ctx context.Context, id string) (store.AdminUser, error)
	GetAdminUserByUsername(ctx context.Context, username string) (store.AdminUser, error)
	ListAdminUsers(ctx context.Context) ([]store.AdminUser, error)
	UpdateAdminUser(ctx context.Context, user store.AdminUser) (store.AdminUser, error)
	DeleteAdminUser(ctx context.Context, id string) error
}
