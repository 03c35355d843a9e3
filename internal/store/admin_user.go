package store

import (
	"context"
	"fmt"
	"strings"
)

// AdminUserKey normalizes a bare or prefixed admin id to its store key
func AdminUserKey(id string) string {
	return keyFor(PrefixAdminUser, id)
}

// CreateAdminUser stores a new admin. Returns ErrAlreadyExists if the id is taken.
func (s *Store) CreateAdminUser(ctx context.Context, user AdminUser) (AdminUser, error) {
	user.ID = AdminUserKey(user.ID)
	version, err := s.insert(ctx, user.ID, user)
	if err != nil {
		return AdminUser{}, err
	}
	user.Version = version
	return user, nil
}

// GetAdminUser retrieves an admin by bare or prefixed id
func (s *Store) GetAdminUser(ctx context.Context, id string) (AdminUser, error) {
	var user AdminUser
	version, err := s.get(ctx, AdminUserKey(id), &user)
	if err != nil {
		return AdminUser{}, err
	}
	user.Version = version
	return user, nil
}

// GetAdminUserByUsername finds an admin by username, ignoring case
func (s *Store) GetAdminUserByUsername(ctx context.Context, username string) (AdminUser, error) {
	users, err := s.ListAdminUsers(ctx)
	if err != nil {
		return AdminUser{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return AdminUser{}, ErrNotFound
}

// ListAdminUsers returns every admin ordered by id
func (s *Store) ListAdminUsers(ctx context.Context) ([]AdminUser, error) {
	users, err := list(ctx, s.kv, PrefixAdminUser, func(u *AdminUser, v int64) { u.Version = v })
	if err != nil {
		return nil, fmt.Errorf("failed to list admin users: %w", err)
	}
	return users, nil
}

// UpdateAdminUser writes user if it has not changed since it was read
func (s *Store) UpdateAdminUser(ctx context.Context, user AdminUser) (AdminUser, error) {
	version, err := s.put(ctx, AdminUserKey(user.ID), user, user.Version)
	if err != nil {
		return AdminUser{}, err
	}
	user.Version = version
	return user, nil
}

// DeleteAdminUser removes an admin
func (s *Store) DeleteAdminUser(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, AdminUserKey(id))
}
