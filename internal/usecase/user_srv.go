package usecase

import (
	"context"
	"fmt"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateRole(ctx context.Context, caller Caller, userID uuid.UUID, role entity.UserRole) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, caller Caller, userID uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, storageErr("find user", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateRole(ctx context.Context, caller Caller, userID uuid.UUID, role entity.UserRole) (*response.UserResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsStaff {
		return nil, ErrForbidden
	}

	switch role {
	case entity.RoleOwner, entity.RoleOperator, entity.RoleClient:
	default:
		return nil, fmt.Errorf("invalid role %q", role)
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user for role update",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, storageErr("find user", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := us.userRepo.UpdateRole(ctx, userID, role); err != nil {
		us.log.Error("Failed to update role",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, storageErr("update user role", err)
	}

	us.log.Info("User role updated",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)),
		zap.String("updated_by", caller.ID.String()))

	user.Role = role
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) DeleteUser(ctx context.Context, caller Caller, userID uuid.UUID) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if !caller.IsStaff {
		return ErrForbidden
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to get user for delete", zap.Error(err), zap.String("user_id", userID.String()))
		return storageErr("find user", err)
	}
	if user == nil {
		return ErrNotFound
	}

	if err := us.userRepo.Delete(ctx, userID); err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID.String()))
		return storageErr("delete user", err)
	}

	us.log.Info("User deleted",
		zap.String("user_id", userID.String()),
		zap.String("email", user.Email))
	return nil
}
