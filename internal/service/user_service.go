package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/repository"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// UserService coordinates user record workflows.
type UserService struct {
	users repository.UserRepository
}

// UserDependencies bundles repositories for the user service.
type UserDependencies struct {
	UserRepo repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{users: deps.UserRepo}
}

// Create persists a new user record. The identifier and both timestamps are
// assigned here; uniqueness violations surface as store-level errors.
func (s *UserService) Create(ctx context.Context, input dto.UserRequest) (dto.UserResponse, error) {
	user := input.ToUser()
	user.ID = uuid.NewString()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.users.Save(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// GetByID fetches one record by identifier.
func (s *UserService) GetByID(ctx context.Context, id string) (dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if user == nil {
		return dto.UserResponse{}, apperrors.NewNotFound(fmt.Sprintf("User not found with ID: %s", id))
	}
	return dto.NewUserResponse(user), nil
}

// GetByDNI fetches one record by its national-ID unique key.
func (s *UserService) GetByDNI(ctx context.Context, dni string) (dto.UserResponse, error) {
	user, err := s.users.FindByDNI(ctx, dni)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if user == nil {
		return dto.UserResponse{}, apperrors.NewNotFound(fmt.Sprintf("User not found with DNI: %s", dni))
	}
	return dto.NewUserResponse(user), nil
}

// List returns all records in store-defined order. A fresh call re-issues
// the query.
func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return responses, nil
}

// Update replaces an existing record wholesale. Only the identifier and the
// creation timestamp carry over from the stored record.
func (s *UserService) Update(ctx context.Context, id string, input dto.UserRequest) (dto.UserResponse, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if existing == nil {
		return dto.UserResponse{}, apperrors.NewNotFound(fmt.Sprintf("User not found with ID: %s", id))
	}

	user := input.ToUser()
	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Save(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// Delete removes a record after confirming it exists.
func (s *UserService) Delete(ctx context.Context, id string) error {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NewNotFound(fmt.Sprintf("User not found with ID: %s", id))
	}
	return s.users.Delete(ctx, id)
}
