package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"boatshow-server/internal/access"
	authProcessor "boatshow-server/internal/auth/processor"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAdminUserNotFound   = errors.New("admin user not found")
	ErrUsernameExists      = errors.New("username already exists")
	ErrInvalidPermission   = errors.New("invalid permission")
	ErrInvalidRole         = errors.New("invalid role")
	ErrSuperAdminImmutable = errors.New("super admin cannot be modified")
)

type AdminUserProcessor struct {
	store        AdminUserStore
	logger       *observability.Logger
	hashPassword func(string) (string, error)
	now          func() time.Time
}

func New(store AdminUserStore, logger *observability.Logger) AdminUserProcessor {
	return AdminUserProcessor{
		store:        store,
		logger:       logger,
		hashPassword: authProcessor.HashPassword,
		now:          time.Now,
	}
}

// ListAdminUsers returns every admin without credentials
func (p *AdminUserProcessor) ListAdminUsers(ctx context.Context) ([]store.AdminUserView, error) {
	users, err := p.store.ListAdminUsers(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list admin users", err)
		return nil, err
	}

	views := make([]store.AdminUserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View())
	}
	return views, nil
}

// CreateAdminUserRequest represents a request to create an admin account
type CreateAdminUserRequest struct {
	Username    string
	Email       string
	Password    string
	Role        string
	Permissions []string
}

// CreateAdminUser adds an admin account. Only the admin role can be created;
// the super admin is seeded and unique.
func (p *AdminUserProcessor) CreateAdminUser(ctx context.Context, req CreateAdminUserRequest) (store.AdminUserView, error) {
	username := strings.TrimSpace(req.Username)
	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: username})

	if req.Role != "" && req.Role != store.AdminRoleAdmin {
		return store.AdminUserView{}, ErrInvalidRole
	}
	permissions, err := normalizePermissions(req.Permissions)
	if err != nil {
		return store.AdminUserView{}, err
	}
	if err := p.ensureUsernameFree(ctx, username, ""); err != nil {
		return store.AdminUserView{}, err
	}

	hash, err := p.hashPassword(req.Password)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.AdminUserView{}, err
	}

	user, err := p.store.CreateAdminUser(ctx, store.AdminUser{
		ID:           store.AdminUserKey(uuid.NewString()),
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		Role:         store.AdminRoleAdmin,
		Permissions:  permissions,
		PasswordHash: hash,
		CreatedAt:    p.now().UTC(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create admin user", err)
		return store.AdminUserView{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: user.ID})
	p.logger.Info(ctx, "admin user created")
	return user.View(), nil
}

// UpdateAdminUserRequest is a partial update. Nil fields are left unchanged.
type UpdateAdminUserRequest struct {
	Username    *string
	Email       *string
	Password    *string
	Permissions *[]string
}

// UpdateAdminUser edits an admin account. The super admin cannot be edited.
func (p *AdminUserProcessor) UpdateAdminUser(ctx context.Context, id string, req UpdateAdminUserRequest) (store.AdminUserView, error) {
	id = store.AdminUserKey(id)
	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: id})

	user, err := p.getMutable(ctx, id)
	if err != nil {
		return store.AdminUserView{}, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if !strings.EqualFold(username, user.Username) {
			if err := p.ensureUsernameFree(ctx, username, user.ID); err != nil {
				return store.AdminUserView{}, err
			}
		}
		user.Username = username
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Permissions != nil {
		permissions, err := normalizePermissions(*req.Permissions)
		if err != nil {
			return store.AdminUserView{}, err
		}
		user.Permissions = permissions
	}
	if req.Password != nil {
		hash, err := p.hashPassword(*req.Password)
		if err != nil {
			p.logger.Error(ctx, "failed to hash password", err)
			return store.AdminUserView{}, err
		}
		user.PasswordHash = hash
	}
	updatedAt := p.now().UTC()
	user.UpdatedAt = &updatedAt

	updated, err := p.store.UpdateAdminUser(ctx, user)
	if err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			p.logger.Error(ctx, "failed to update admin user", err)
		}
		return store.AdminUserView{}, err
	}

	p.logger.Info(ctx, "admin user updated")
	return updated.View(), nil
}

// DeleteAdminUser removes an admin account. The super admin cannot be deleted.
func (p *AdminUserProcessor) DeleteAdminUser(ctx context.Context, id string) error {
	id = store.AdminUserKey(id)
	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: id})

	if _, err := p.getMutable(ctx, id); err != nil {
		return err
	}

	if err := p.store.DeleteAdminUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdminUserNotFound
		}
		p.logger.Error(ctx, "failed to delete admin user", err)
		return err
	}

	p.logger.Info(ctx, "admin user deleted")
	return nil
}

// EnsureSuperAdmin creates the super admin with password when no admin
// exists yet. It reports whether an account was created.
func (p *AdminUserProcessor) EnsureSuperAdmin(ctx context.Context, password string) (bool, error) {
	users, err := p.store.ListAdminUsers(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list admin users", err)
		return false, err
	}
	if len(users) > 0 {
		return false, nil
	}

	hash, err := p.hashPassword(password)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return false, err
	}

	_, err = p.store.CreateAdminUser(ctx, store.AdminUser{
		ID:           store.SuperAdminID,
		Username:     store.SuperAdminUsername,
		Role:         store.AdminRoleSuperAdmin,
		Permissions:  []string{access.All},
		PasswordHash: hash,
		CreatedAt:    p.now().UTC(),
	})
	if err != nil {
		// another instance seeded first
		if errors.Is(err, store.ErrAlreadyExists) {
			return false, nil
		}
		p.logger.Error(ctx, "failed to seed super admin", err)
		return false, err
	}

	p.logger.Warn(ctx, "seeded super admin with the configured default password")
	return true, nil
}

func (p *AdminUserProcessor) getMutable(ctx context.Context, id string) (store.AdminUser, error) {
	if id == store.SuperAdminID {
		return store.AdminUser{}, ErrSuperAdminImmutable
	}

	user, err := p.store.GetAdminUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AdminUser{}, ErrAdminUserNotFound
		}
		p.logger.Error(ctx, "failed to get admin user", err)
		return store.AdminUser{}, err
	}
	if user.Role == store.AdminRoleSuperAdmin {
		return store.AdminUser{}, ErrSuperAdminImmutable
	}
	return user, nil
}

// ensureUsernameFree fails if another admin than selfID already uses username
func (p *AdminUserProcessor) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := p.store.GetAdminUserByUsername(ctx, username)
	if err == nil && existing.ID != selfID {
		return ErrUsernameExists
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up username", err)
		return err
	}
	return nil
}

// normalizePermissions validates perms and removes duplicates
func normalizePermissions(perms []string) ([]string, error) {
	out := make([]string, 0, len(perms))
	seen := make(map[string]bool, len(perms))
	for _, perm := range perms {
		perm = strings.ToLower(strings.TrimSpace(perm))
		if !access.IsValidPermission(perm) {
			return nil, ErrInvalidPermission
		}
		if !seen[perm] {
			seen[perm] = true
			out = append(out, perm)
		}
	}
	return out, nil
}
