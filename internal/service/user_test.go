package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ivan-nizalzov/explore-with-me/internal/domain"
	"github.com/ivan-nizalzov/explore-with-me/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "alice",
		Email: "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_MissingEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "alice",
		Email: "alice@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrUserNotFound)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCategoryService_Create_Success(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(categoryRepo)

	categoryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	category, err := svc.Create(context.Background(), "concerts")

	require.NoError(t, err)
	assert.Equal(t, "concerts", category.Name)
	assert.NotEmpty(t, category.ID)
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(categoryRepo)

	_, err := svc.Create(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryService_Delete_InUse(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(categoryRepo)

	categoryRepo.EXPECT().Delete(mock.Anything, "c1").Return(domain.ErrCategoryInUse)

	err := svc.Delete(context.Background(), "c1")

	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
}
