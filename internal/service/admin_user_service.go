package service

import (
	"context"

	"github.com/bierecode/backend/internal/model"
	"github.com/bierecode/backend/internal/repository"
)

// AdminUserService provides admin-only account management operations.
type AdminUserService interface {
	// ListUsers returns every account ordered by creation time ascending.
	ListUsers(ctx context.Context) ([]*model.User, error)
	// SetRole assigns a role from the closed set and returns the updated
	// account with a refreshed updatedAt. The handler validates the role
	// value before calling.
	SetRole(ctx context.Context, id, role string) (*model.User, error)
}

type adminUserService struct {
	userRepo repository.UserRepository
}

// NewAdminUserService creates an AdminUserService.
func NewAdminUserService(userRepo repository.UserRepository) AdminUserService {
	return &adminUserService{userRepo: userRepo}
}

func (s *adminUserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminUserService) SetRole(ctx context.Context, id, role string) (*model.User, error) {
	return s.userRepo.UpdateRole(ctx, id, role)
}
