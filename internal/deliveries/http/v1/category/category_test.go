package category

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/karnaval/go-costume-catalog/internal/common"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/services/mock"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testCategoryHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockCategoryService
}

func categoryTestHelper(t *testing.T) testCategoryHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockCategoryService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	New(app.Group("/api/v1"), mockSvc)

	return testCategoryHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type expectation struct {
	wantRes  string
	wantCode int
}

func serve(t *testing.T, router *echo.Echo, method, url, body string, want expectation) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, want.wantCode, resp.StatusCode)
	require.Equal(t, want.wantRes, strings.TrimSuffix(string(got), "\n"))
}

const categoryJSON = `{"kind":"category","id":1,"name":"Folk","slug":"folk","description":"Folk costumes","image":"","ageCategory":"children","active":true,"subcategories":[],"createdAt":null,"updatedAt":null}`

func folkCategory() *models.Category {
	return &models.Category{
		ID:          1,
		Name:        "Folk",
		Slug:        "folk",
		Description: "Folk costumes",
		AgeCategory: models.AgeCategoryChildren,
		Active:      true,
	}
}

func Test_Handler_listCategories(t *testing.T) {
	testHelper := categoryTestHelper(t)

	tests := []struct {
		name        string
		urlCalled   string
		expectation expectation
		doMock      func()
	}{
		{
			name:      "filters passed to the service",
			urlCalled: "/api/v1/categories?ageCategory=children&activeOnly=true",
			expectation: expectation{
				wantRes:  `{"kind":"collection","contents":[{"kind":"category","id":1,"name":"Folk","slug":"folk","description":"Folk costumes","image":"","ageCategory":"children","active":true,"subcategories":[{"kind":"subCategory","id":10,"categoryId":1,"name":"Russian","slug":"russian","description":"","image":"","ageCategory":"children","count":12,"active":true,"available":true,"createdAt":null,"updatedAt":null}],"createdAt":null,"updatedAt":null}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func() {
				c := folkCategory()
				c.Subcategories = []models.SubCategory{{
					ID: 10, CategoryID: 1, Name: "Russian", Slug: "russian",
					AgeCategory: models.AgeCategoryChildren, Count: 12, Active: true, Available: true,
				}}
				testHelper.mockService.EXPECT().
					List(gomock.Any(), models.CategoryFilterOptions{AgeCategory: models.AgeCategoryChildren, ActiveOnly: true}).
					Return([]models.Category{*c}, nil)
			},
		},
		{
			name:      "empty catalog",
			urlCalled: "/api/v1/categories/",
			expectation: expectation{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().List(gomock.Any(), models.CategoryFilterOptions{}).Return(nil, nil)
			},
		},
		{
			name:      "unknown age category",
			urlCalled: "/api/v1/categories?ageCategory=teens",
			expectation: expectation{
				wantRes:  `{"status":"error","code":"VALIDATION_ERROR","message":"Age Category must be 'children' or 'adults'","errors":[{"code":"INVALID_AGE_CATEGORY","field":"ageCategory","message":"Age Category must be 'children' or 'adults'"}]}`,
				wantCode: 400,
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/categories",
			expectation: expectation{
				wantRes:  `{"status":"error","code":500,"message":"internal server error"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}
			serve(t, testHelper.router, http.MethodGet, tt.urlCalled, "", tt.expectation)
		})
	}
}

func Test_Handler_getCategory(t *testing.T) {
	testHelper := categoryTestHelper(t)

	tests := []struct {
		name        string
		urlCalled   string
		expectation expectation
		doMock      func()
	}{
		{
			name:        "found",
			urlCalled:   "/api/v1/categories/1",
			expectation: expectation{wantRes: categoryJSON, wantCode: 200},
			doMock: func() {
				testHelper.mockService.EXPECT().Get(gomock.Any(), 1).Return(folkCategory(), nil)
			},
		},
		{
			name:      "not found",
			urlCalled: "/api/v1/categories/2",
			expectation: expectation{
				wantRes:  `{"status":"error","code":"CATEGORY_NOT_FOUND","message":"Category not found"}`,
				wantCode: 404,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().Get(gomock.Any(), 2).
					Return(nil, fmt.Errorf("%w: %w", common.ErrDataNotFound, models.GetErrMap(models.ErrKeyCategoryNotFound)))
			},
		},
		{
			name:      "invalid id",
			urlCalled: "/api/v1/categories/abc",
			expectation: expectation{
				wantRes:  `{"status":"error","code":"VALIDATION_ERROR","message":"Valid ID is required","errors":[{"code":"INVALID_ID","field":"id","message":"Valid ID is required"}]}`,
				wantCode: 400,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}
			serve(t, testHelper.router, http.MethodGet, tt.urlCalled, "", tt.expectation)
		})
	}
}

func Test_Handler_createCategory(t *testing.T) {
	testHelper := categoryTestHelper(t)

	tests := []struct {
		name        string
		body        string
		expectation expectation
		doMock      func()
	}{
		{
			name: "legacy field names with inline subcategories",
			body: `{"title":"Folk","description":"Folk costumes","age_category":"children","image_url":"/img/folk.jpg","subcategories":[{"name":"Russian","count":"12 костюмов"}]}`,
			expectation: expectation{
				wantRes:  categoryJSON,
				wantCode: 201,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().Create(gomock.Any(), models.CreateCategoryIn{
					Name:        "Folk",
					Description: "Folk costumes",
					AgeCategory: models.AgeCategoryChildren,
					ImageURL:    "/img/folk.jpg",
					Subcategories: []models.InlineSubCategoryIn{
						{Name: "Russian", Count: 12},
					},
				}).Return(folkCategory(), nil)
			},
		},
		{
			name: "violations from the service",
			body: `{"name":"Folk"}`,
			expectation: expectation{
				wantRes:  `{"status":"error","code":"VALIDATION_ERROR","message":"Description is required","errors":[{"code":"DESCRIPTION_REQUIRED","field":"description","message":"Description is required"}]}`,
				wantCode: 400,
			},
			doMock: func() {
				violation := validation.NewFieldError("description", models.ErrKeyDescriptionRequired)
				testHelper.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, common.NewValidationError(multierror.Append(nil, violation)))
			},
		},
		{
			name: "malformed body",
			body: `{"name":`,
			expectation: expectation{
				wantRes:  `{"status":"error","code":400,"message":"unexpected EOF"}`,
				wantCode: 400,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}
			serve(t, testHelper.router, http.MethodPost, "/api/v1/categories", tt.body, tt.expectation)
		})
	}
}

func Test_Handler_updateCategory(t *testing.T) {
	testHelper := categoryTestHelper(t)

	name := "Folk"
	testHelper.mockService.EXPECT().
		Update(gomock.Any(), 1, models.UpdateCategoryIn{Name: &name}).
		Return(folkCategory(), nil)

	serve(t, testHelper.router, http.MethodPut, "/api/v1/categories/1", `{"title":"Folk"}`,
		expectation{wantRes: categoryJSON, wantCode: 200})
}

func Test_Handler_deleteCategory(t *testing.T) {
	testHelper := categoryTestHelper(t)

	testHelper.mockService.EXPECT().Delete(gomock.Any(), 1).Return(nil)
	serve(t, testHelper.router, http.MethodDelete, "/api/v1/categories/1", "",
		expectation{wantRes: `{"success":true}`, wantCode: 200})

	testHelper.mockService.EXPECT().Delete(gomock.Any(), 2).
		Return(fmt.Errorf("%w: %w", common.ErrDataNotFound, models.GetErrMap(models.ErrKeyCategoryNotFound)))
	serve(t, testHelper.router, http.MethodDelete, "/api/v1/categories/2", "",
		expectation{wantRes: `{"status":"error","code":"CATEGORY_NOT_FOUND","message":"Category not found"}`, wantCode: 404})
}
