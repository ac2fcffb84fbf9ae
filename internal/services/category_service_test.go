package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/logger"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/models"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/repositories"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/services"
	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sub category of an existing category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := services.NewCategoryService(repo, logger.Nop())

		repo.On("ExistsByName", mock.Anything, "Perifericos").Return(false, nil).Once()
		repo.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Category")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Category).ID = 2 }).
			Return(nil).Once()

		category, err := service.Create(ctx, models.NewCategoryRequest{Name: "Perifericos", SuperCategoryID: int64Ptr(1)})
		require.NoError(t, err)
		assert.Equal(t, int64(2), category.ID)
		assert.Equal(t, "Perifericos", category.Name)
		assert.Equal(t, int64(1), *category.SuperCategoryID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := services.NewCategoryService(repo, logger.Nop())

		repo.On("ExistsByName", mock.Anything, "Computador").Return(true, nil).Once()

		_, err := service.Create(ctx, models.NewCategoryRequest{Name: "Computador"})
		verrs, ok := validation.AsErrors(err)
		require.True(t, ok)
		require.Len(t, verrs.Violations, 1)
		assert.Equal(t, "name", verrs.Violations[0].Field)
		assert.Equal(t, "category.name.unique", verrs.Violations[0].Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("self reference", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := services.NewCategoryService(repo, logger.Nop())

		repo.On("ExistsByID", mock.Anything, int64(42)).Return(false, nil)
		repo.On("ExistsByName", mock.Anything, "Loop").Return(false, nil).Once()

		_, err := service.Create(ctx, models.NewCategoryRequest{ID: int64Ptr(42), Name: "Loop", SuperCategoryID: int64Ptr(42)})
		verrs, ok := validation.AsErrors(err)
		require.True(t, ok)
		codes := make([]string, 0, len(verrs.Violations))
		for _, v := range verrs.Violations {
			codes = append(codes, v.Code)
		}
		assert.Contains(t, codes, "category.superCategory.self")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing super category and empty name are reported together", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := services.NewCategoryService(repo, logger.Nop())

		repo.On("ExistsByID", mock.Anything, int64(99)).Return(false, nil).Once()

		_, err := service.Create(ctx, models.NewCategoryRequest{Name: "", SuperCategoryID: int64Ptr(99)})
		verrs, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"name", "superCategory"}, fields(verrs.Violations))
	})

	t.Run("lookup failure aborts validation", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := services.NewCategoryService(repo, logger.Nop())

		repo.On("ExistsByName", mock.Anything, "Computador").Return(false, errors.New("database is closed")).Once()

		_, err := service.Create(ctx, models.NewCategoryRequest{Name: "Computador"})
		require.Error(t, err)
		_, isValidation := validation.AsErrors(err)
		assert.False(t, isValidation)
		assert.Contains(t, err.Error(), "database is closed")
	})
}

func TestCategoryService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	service := services.NewCategoryService(repo, logger.Nop())

	root := &models.Category{ID: 1, Name: "Computador"}
	repo.On("GetByID", mock.Anything, int64(2)).
		Return(&models.Category{ID: 2, Name: "Perifericos", SuperCategoryID: int64Ptr(1), SuperCategory: root}, nil).Once()
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, repositories.ErrNotFound).Once()

	category, err := service.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Computador", category.SuperCategory.Name)

	_, err = service.Get(ctx, 3)
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
}
