// Package user provides admin-facing user management. Accounts are never
// hard-deleted; the only admin mutation is changing a user's role.
package user

import (
	"context"

	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

// Service exposes admin operations over user accounts
type Service struct {
	storage storage.Storage
}

// New creates a new user service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// List returns all users, oldest first
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// Get returns a user by id
func (s *Service) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// UpdateRole changes a user's role
func (s *Service) UpdateRole(ctx context.Context, id model.UserID, role model.Role) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
