package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/domain"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error) {
	args := m.Called(ctx, phoneNumber)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByDNI(ctx context.Context, dni string) (*domain.User, error) {
	args := m.Called(ctx, dni)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validRequest() dto.UserRequest {
	return dto.UserRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "+1234567890",
		DNI:         "12345678",
	}
}

func storedUser() *domain.User {
	created := time.Now().UTC().Add(-time.Hour)
	return &domain.User{
		ID:             "c3d4a2a0-1111-4a7b-9d6e-000000000001",
		DocumentNumber: "12345678",
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john.doe@example.com",
		PhoneNumber:    "+1234567890",
		Status:         domain.UserStatusActive,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "USER_NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestUserService_Create(t *testing.T) {
	t.Run("assigns identifier, timestamps and ACTIVE status", func(t *testing.T) {
		repo := new(MockUserRepository)
		var saved *domain.User
		repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.User) }).
			Return(nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		resp, err := svc.Create(context.Background(), validRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, "12345678", resp.DNI)
		assert.False(t, resp.CreatedAt.IsZero())
		assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)

		require.NotNil(t, saved)
		assert.Equal(t, resp.ID, saved.ID)
		assert.Equal(t, "12345678", saved.DocumentNumber)
		repo.AssertExpectations(t)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))

		svc := NewUserService(UserDependencies{UserRepo: repo})
		_, err := svc.Create(context.Background(), validRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key")
	})
}

func TestUserService_GetByID(t *testing.T) {
	t.Run("returns the external representation", func(t *testing.T) {
		user := storedUser()
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		resp, err := svc.GetByID(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, user.DocumentNumber, resp.DNI)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("absent record maps to not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		_, err := svc.GetByID(context.Background(), "missing")

		requireNotFound(t, err)
	})
}

func TestUserService_GetByDNI(t *testing.T) {
	t.Run("returns the external representation", func(t *testing.T) {
		user := storedUser()
		repo := new(MockUserRepository)
		repo.On("FindByDNI", mock.Anything, "12345678").Return(user, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		resp, err := svc.GetByDNI(context.Background(), "12345678")

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "12345678", resp.DNI)
	})

	t.Run("absent record maps to not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByDNI", mock.Anything, "00000000").Return(nil, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		_, err := svc.GetByDNI(context.Background(), "00000000")

		requireNotFound(t, err)
	})
}

func TestUserService_List(t *testing.T) {
	t.Run("returns all records", func(t *testing.T) {
		first := storedUser()
		second := storedUser()
		second.ID = "c3d4a2a0-1111-4a7b-9d6e-000000000002"
		second.DocumentNumber = "87654321"

		repo := new(MockUserRepository)
		repo.On("FindAll", mock.Anything).Return([]*domain.User{first, second}, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		resp, err := svc.List(context.Background())

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "87654321", resp[1].DNI)
	})

	t.Run("empty store yields empty sequence", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindAll", mock.Anything).Return([]*domain.User{}, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		resp, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("replaces fields, preserves identifier and creation timestamp", func(t *testing.T) {
		existing := storedUser()
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		var saved *domain.User
		repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.User) }).
			Return(nil)

		input := validRequest()
		input.LastName = "Smith"

		svc := NewUserService(UserDependencies{UserRepo: repo})
		resp, err := svc.Update(context.Background(), existing.ID, input)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, resp.ID)
		assert.Equal(t, "Smith", resp.LastName)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.True(t, resp.CreatedAt.Equal(existing.CreatedAt))
		assert.True(t, !resp.UpdatedAt.Before(existing.UpdatedAt))

		require.NotNil(t, saved)
		assert.Equal(t, existing.ID, saved.ID)
		assert.True(t, saved.CreatedAt.Equal(existing.CreatedAt))
	})

	t.Run("absent record maps to not found without saving", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		_, err := svc.Update(context.Background(), "missing", validRequest())

		requireNotFound(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("removes an existing record", func(t *testing.T) {
		existing := storedUser()
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		repo.On("Delete", mock.Anything, existing.ID).Return(nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		err := svc.Delete(context.Background(), existing.ID)

		require.NoError(t, err)
		repo.AssertCalled(t, "Delete", mock.Anything, existing.ID)
	})

	t.Run("absent record maps to not found without deleting", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		svc := NewUserService(UserDependencies{UserRepo: repo})
		err := svc.Delete(context.Background(), "missing")

		requireNotFound(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
