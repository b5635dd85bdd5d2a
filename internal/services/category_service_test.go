package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"
	"github.com/karnaval/go-costume-catalog/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryService_List(t *testing.T) {
	testHelper := serviceTestHelper(t)

	tests := []struct {
		name    string
		opts    models.CategoryFilterOptions
		doMock  func(opts models.CategoryFilterOptions)
		want    map[int][]int
		wantErr bool
	}{
		{
			name: "subcategories grouped by category",
			opts: models.CategoryFilterOptions{AgeCategory: models.AgeCategoryChildren},
			doMock: func(opts models.CategoryFilterOptions) {
				testHelper.mockCategoryRepository.EXPECT().List(gomock.Any(), opts).
					Return([]models.Category{{ID: 2}, {ID: 1}}, nil)
				testHelper.mockSubCategoryRepository.EXPECT().ListByCategoryIDs(gomock.Any(), []int{2, 1}, true).
					Return([]models.SubCategory{{ID: 10, CategoryID: 1}, {ID: 11, CategoryID: 2}, {ID: 12, CategoryID: 1}}, nil)
			},
			want: map[int][]int{2: {11}, 1: {10, 12}},
		},
		{
			name: "category without subcategories",
			doMock: func(opts models.CategoryFilterOptions) {
				testHelper.mockCategoryRepository.EXPECT().List(gomock.Any(), opts).
					Return([]models.Category{{ID: 3}}, nil)
				testHelper.mockSubCategoryRepository.EXPECT().ListByCategoryIDs(gomock.Any(), []int{3}, true).
					Return([]models.SubCategory{}, nil)
			},
			want: map[int][]int{3: nil},
		},
		{
			name: "category repository failed",
			doMock: func(opts models.CategoryFilterOptions) {
				testHelper.mockCategoryRepository.EXPECT().List(gomock.Any(), opts).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "subcategory repository failed",
			doMock: func(opts models.CategoryFilterOptions) {
				testHelper.mockCategoryRepository.EXPECT().List(gomock.Any(), opts).Return([]models.Category{{ID: 3}}, nil)
				testHelper.mockSubCategoryRepository.EXPECT().ListByCategoryIDs(gomock.Any(), []int{3}, true).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock(tt.opts)

			got, err := testHelper.categoryService.List(context.Background(), tt.opts)
			assert.Equal(t, tt.wantErr, err != nil)
			if tt.wantErr {
				assert.NotErrorIs(t, err, common.ErrDataNotFound)
				return
			}

			require.Len(t, got, len(tt.want))
			for _, c := range got {
				var ids []int
				for _, sc := range c.Subcategories {
					ids = append(ids, sc.ID)
				}
				assert.Equal(t, tt.want[c.ID], ids, "category %d", c.ID)
			}
		})
	}
}

func TestCategoryService_Get(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("with every subcategory", func(t *testing.T) {
		testHelper.mockCategoryRepository.EXPECT().GetByID(gomock.Any(), 2).Return(&models.Category{ID: 2}, nil)
		testHelper.mockSubCategoryRepository.EXPECT().ListByCategoryIDs(gomock.Any(), []int{2}, false).
			Return([]models.SubCategory{{ID: 10, CategoryID: 2, Active: false}}, nil)

		got, err := testHelper.categoryService.Get(context.Background(), 2)
		require.NoError(t, err)
		assert.Len(t, got.Subcategories, 1)
	})

	t.Run("not found", func(t *testing.T) {
		testHelper.mockCategoryRepository.EXPECT().GetByID(gomock.Any(), 9).Return(nil, common.ErrNoRows)

		_, err := testHelper.categoryService.Get(context.Background(), 9)
		assert.ErrorIs(t, err, common.ErrDataNotFound)

		var detail models.ErrorDetail
		require.True(t, errors.As(err, &detail))
		assert.Equal(t, "CATEGORY_NOT_FOUND", detail.Code)
	})
}

func TestCategoryService_Create(t *testing.T) {
	testHelper := serviceTestHelper(t)

	tests := []struct {
		name        string
		in          models.CreateCategoryIn
		doMock      func()
		wantErrIs   error
		wantMessage string
		check       func(t *testing.T, got *models.Category)
	}{
		{
			name: "defaults applied",
			in: models.CreateCategoryIn{
				Name:        "Народные",
				Description: "Народные костюмы",
				Subcategories: []models.InlineSubCategoryIn{
					{Name: "Русские", Count: 12},
					{Name: "Взрослые", AgeCategory: models.AgeCategoryAdults, Active: ptr(false)},
				},
			},
			doMock: func() {
				testHelper.mockCategoryRepository.EXPECT().Create(gomock.Any(), &models.Category{
					Name:        "Народные",
					Slug:        "narodnye",
					Description: "Народные костюмы",
					AgeCategory: models.AgeCategoryChildren,
					Active:      true,
				}).Return(&models.Category{ID: 5, Name: "Народные", AgeCategory: models.AgeCategoryChildren}, nil)

				testHelper.mockSubCategoryRepository.EXPECT().Create(gomock.Any(), &models.SubCategory{
					CategoryID:  5,
					Name:        "Русские",
					Slug:        "russkie",
					AgeCategory: models.AgeCategoryChildren,
					Count:       12,
					Active:      true,
					Available:   true,
				}).Return(&models.SubCategory{ID: 50, CategoryID: 5}, nil)

				testHelper.mockSubCategoryRepository.EXPECT().Create(gomock.Any(), &models.SubCategory{
					CategoryID:  5,
					Name:        "Взрослые",
					Slug:        "vzroslye",
					AgeCategory: models.AgeCategoryAdults,
					Active:      false,
					Available:   true,
				}).Return(&models.SubCategory{ID: 51, CategoryID: 5}, nil)
			},
			check: func(t *testing.T, got *models.Category) {
				assert.Equal(t, 5, got.ID)
				assert.Len(t, got.Subcategories, 2)
			},
		},
		{
			name: "explicit slug kept",
			in: models.CreateCategoryIn{
				Name:        "Сказки",
				Slug:        "fairy-tales",
				Description: "Герои сказок",
				AgeCategory: models.AgeCategoryAdults,
				Active:      ptr(false),
			},
			doMock: func() {
				testHelper.mockCategoryRepository.EXPECT().Create(gomock.Any(), &models.Category{
					Name:        "Сказки",
					Slug:        "fairy-tales",
					Description: "Герои сказок",
					AgeCategory: models.AgeCategoryAdults,
					Active:      false,
				}).Return(&models.Category{ID: 6}, nil)
			},
			check: func(t *testing.T, got *models.Category) {
				assert.Equal(t, 6, got.ID)
				assert.NotNil(t, got.Subcategories)
			},
		},
		{
			name:        "missing name",
			in:          models.CreateCategoryIn{Description: "x"},
			doMock:      func() {},
			wantErrIs:   common.ErrValidation,
			wantMessage: "Name is required",
		},
		{
			name:        "missing description",
			in:          models.CreateCategoryIn{Name: "x"},
			doMock:      func() {},
			wantErrIs:   common.ErrValidation,
			wantMessage: "Description is required",
		},
		{
			name:        "unknown age category",
			in:          models.CreateCategoryIn{Name: "x", Description: "y", AgeCategory: "teens"},
			doMock:      func() {},
			wantErrIs:   common.ErrValidation,
			wantMessage: "Age Category must be 'children' or 'adults'",
		},
		{
			name: "inline subcategory without name",
			in: models.CreateCategoryIn{
				Name:          "x",
				Description:   "y",
				Subcategories: []models.InlineSubCategoryIn{{Count: 1}},
			},
			doMock:      func() {},
			wantErrIs:   common.ErrValidation,
			wantMessage: "Name is required",
		},
		{
			name: "subcategory insert fails the whole create",
			in: models.CreateCategoryIn{
				Name:          "x",
				Description:   "y",
				Subcategories: []models.InlineSubCategoryIn{{Name: "z"}},
			},
			doMock: func() {
				testHelper.mockCategoryRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Category{ID: 7}, nil)
				testHelper.mockSubCategoryRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			wantErrIs: assert.AnError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			got, err := testHelper.categoryService.Create(context.Background(), tt.in)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, got)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, validation.FirstMessage(err))
				}
				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}

	count, err := testutil.GatherAndCount(testHelper.registry, "catalog_mutations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "success and error series")
}

func TestCategoryService_Update(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("partial", func(t *testing.T) {
		in := models.UpdateCategoryIn{Name: ptr("Новое")}
		testHelper.mockCategoryRepository.EXPECT().Update(gomock.Any(), 2, in).Return(&models.Category{ID: 2, Name: "Новое"}, nil)
		testHelper.mockSubCategoryRepository.EXPECT().ListByCategoryIDs(gomock.Any(), []int{2}, false).Return([]models.SubCategory{}, nil)

		got, err := testHelper.categoryService.Update(context.Background(), 2, in)
		require.NoError(t, err)
		assert.Equal(t, "Новое", got.Name)
	})

	t.Run("empty body returns the stored category", func(t *testing.T) {
		testHelper.mockCategoryRepository.EXPECT().GetByID(gomock.Any(), 2).Return(&models.Category{ID: 2}, nil)
		testHelper.mockSubCategoryRepository.EXPECT().ListByCategoryIDs(gomock.Any(), []int{2}, false).Return([]models.SubCategory{}, nil)

		got, err := testHelper.categoryService.Update(context.Background(), 2, models.UpdateCategoryIn{})
		require.NoError(t, err)
		assert.Equal(t, 2, got.ID)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := testHelper.categoryService.Update(context.Background(), 2, models.UpdateCategoryIn{Name: ptr("")})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("not found", func(t *testing.T) {
		testHelper.mockCategoryRepository.EXPECT().Update(gomock.Any(), 404, gomock.Any()).Return(nil, common.ErrNoRows)

		_, err := testHelper.categoryService.Update(context.Background(), 404, models.UpdateCategoryIn{Active: ptr(true)})
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("cascades in order", func(t *testing.T) {
		gomock.InOrder(
			testHelper.mockCategoryRepository.EXPECT().Exists(gomock.Any(), 2).Return(true, nil),
			testHelper.mockCostumeRepository.EXPECT().DeleteCharacteristicsByCategoryID(gomock.Any(), 2).Return(int64(6), nil),
			testHelper.mockCostumeRepository.EXPECT().DeleteByCategoryID(gomock.Any(), 2).Return(int64(3), nil),
			testHelper.mockSubCategoryRepository.EXPECT().DeleteByCategoryID(gomock.Any(), 2).Return(int64(2), nil),
			testHelper.mockCategoryRepository.EXPECT().Delete(gomock.Any(), 2).Return(nil),
		)

		assert.NoError(t, testHelper.categoryService.Delete(context.Background(), 2))
	})

	t.Run("missing category deletes nothing", func(t *testing.T) {
		testHelper.mockCategoryRepository.EXPECT().Exists(gomock.Any(), 9).Return(false, nil)

		err := testHelper.categoryService.Delete(context.Background(), 9)
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})

	t.Run("storage failure midway", func(t *testing.T) {
		testHelper.mockCategoryRepository.EXPECT().Exists(gomock.Any(), 3).Return(true, nil)
		testHelper.mockCostumeRepository.EXPECT().DeleteCharacteristicsByCategoryID(gomock.Any(), 3).Return(int64(0), assert.AnError)

		err := testHelper.categoryService.Delete(context.Background(), 3)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, common.ErrDataNotFound)
	})
}
