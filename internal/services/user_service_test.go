package services_test

import (
	"context"
	"testing"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and stores the canonical email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := services.NewUserService(repo, logger.Nop())

		repo.On("ExistsByEmail", mock.Anything, "danyllosiqueira@gmail.com").Return(false, nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

		user, err := service.Register(ctx, models.NewUserRequest{Login: " DanylloSiqueira@gmail.com", Password: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "danyllosiqueira@gmail.com", user.Email)
		assert.NotEqual(t, "123456", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("123456")))
		repo.AssertExpectations(t)
	})

	t.Run("surrounding spaces and case are normalized before validation", func(t *testing.T) {
		for _, login := range []string{" a@b.com", "a@b.com ", "A@B.com", "\tA@b.COM\n"} {
			repo := new(MockUserRepository)
			service := services.NewUserService(repo, logger.Nop())

			repo.On("ExistsByEmail", mock.Anything, "a@b.com").Return(false, nil).Once()
			repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

			user, err := service.Register(ctx, models.NewUserRequest{Login: login, Password: "123456"})
			require.NoError(t, err, "login %q", login)
			assert.Equal(t, "a@b.com", user.Email)
			repo.AssertExpectations(t)
		}
	})

	t.Run("padded login collides with the stored one", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := services.NewUserService(repo, logger.Nop())

		repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil).Once()

		_, err := service.Register(ctx, models.NewUserRequest{Login: "  Taken@Example.com ", Password: "123456"})
		verrs, ok := validation.AsErrors(err)
		require.True(t, ok)
		require.Len(t, verrs.Violations, 1)
		assert.Equal(t, "user.login.unique", verrs.Violations[0].Code)
	})

	t.Run("email already registered", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := services.NewUserService(repo, logger.Nop())

		repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil).Once()

		_, err := service.Register(ctx, models.NewUserRequest{Login: "taken@example.com", Password: "123456"})
		verrs, ok := validation.AsErrors(err)
		require.True(t, ok)
		require.Len(t, verrs.Violations, 1)
		assert.Equal(t, "login", verrs.Violations[0].Field)
		assert.Equal(t, "user.login.unique", verrs.Violations[0].Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed request", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := services.NewUserService(repo, logger.Nop())

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)

		_, err := service.Register(ctx, models.NewUserRequest{Login: "not-an-email", Password: "123"})
		verrs, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"login", "password"}, fields(verrs.Violations))
	})
}

func TestUserService_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service := services.NewUserService(repo, logger.Nop())

	repo.On("GetByEmail", mock.Anything, "known@example.com").Return(&models.User{ID: 1, Email: "known@example.com"}, nil).Once()
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repositories.ErrNotFound).Once()

	user, err := service.FindByEmail(ctx, "known@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = service.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, services.ErrUserNotRegistered)
}
