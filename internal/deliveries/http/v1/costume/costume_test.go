package costume

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testCostumeHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockCostumeService
}

func costumeTestHelper(t *testing.T, writeMiddlewares ...echo.MiddlewareFunc) testCostumeHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockCostumeService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	New(app.Group("/api/v1"), mockSvc, writeMiddlewares...)

	return testCostumeHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

const costumeJSON = `{"kind":"costume","id":5,"title":"Sarafan","description":"Red sarafan","price":500,"deposit":1000,"image":"/img/sarafan.jpg","size":"M","categoryId":1,"subcategoryId":10,"ageCategory":"children","active":true,"available":true,"characteristics":{"material":"cotton"},"createdAt":null,"updatedAt":null}`

func sarafan() *models.Costume {
	size := "M"
	return &models.Costume{
		ID:              5,
		Title:           "Sarafan",
		Description:     "Red sarafan",
		Price:           models.NewDecimalFromInt(500),
		Deposit:         models.NewDecimalFromInt(1000),
		ImageURL:        "/img/sarafan.jpg",
		Size:            &size,
		CategoryID:      1,
		SubCategoryID:   10,
		AgeCategory:     models.AgeCategoryChildren,
		Active:          true,
		Available:       true,
		Characteristics: models.Characteristics{"material": "cotton"},
	}
}

func Test_Handler_costume(t *testing.T) {
	testHelper := costumeTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		method      string
		urlCalled   string
		body        string
		expectation Expectation
		doMock      func()
	}{
		{
			name:        "list with every filter",
			method:      http.MethodGet,
			urlCalled:   "/api/v1/costumes?categoryId=1&subcategoryId=10&ageCategory=children&activeOnly=true",
			expectation: Expectation{wantRes: `{"kind":"collection","contents":[` + costumeJSON + `],"total_rows":1}`, wantCode: 200},
			doMock: func() {
				testHelper.mockService.EXPECT().List(gomock.Any(), models.CostumeFilterOptions{
					CategoryID:    1,
					SubCategoryID: 10,
					AgeCategory:   models.AgeCategoryChildren,
					ActiveOnly:    true,
				}).Return([]models.Costume{*sarafan()}, nil)
			},
		},
		{
			name:      "list with an unknown age category",
			method:    http.MethodGet,
			urlCalled: "/api/v1/costumes?ageCategory=teens",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"VALIDATION_ERROR","message":"Age Category must be 'children' or 'adults'","errors":[{"code":"INVALID_AGE_CATEGORY","field":"ageCategory","message":"Age Category must be 'children' or 'adults'"}]}`,
				wantCode: 400,
			},
		},
		{
			name:        "stats is not an id",
			method:      http.MethodGet,
			urlCalled:   "/api/v1/costumes/stats",
			expectation: Expectation{wantRes: `{"kind":"costumeStats","children":3,"adults":2,"total":5,"activeCategories":4}`, wantCode: 200},
			doMock: func() {
				testHelper.mockService.EXPECT().GetStats(gomock.Any()).Return(models.CostumeStats{
					Kind: "costumeStats", Children: 3, Adults: 2, Total: 5, ActiveCategories: 4,
				}, nil)
			},
		},
		{
			name:        "get",
			method:      http.MethodGet,
			urlCalled:   "/api/v1/costumes/5",
			expectation: Expectation{wantRes: costumeJSON, wantCode: 200},
			doMock: func() {
				testHelper.mockService.EXPECT().Get(gomock.Any(), 5).Return(sarafan(), nil)
			},
		},
		{
			name:        "create from a legacy admin form",
			method:      http.MethodPost,
			urlCalled:   "/api/v1/costumes",
			body:        `{"name":"Sarafan","description":"Red sarafan","price":"500","image_url":"/img/sarafan.jpg","category_id":"1","subcategory_id":10,"age_category":"children","size":""}`,
			expectation: Expectation{wantRes: costumeJSON, wantCode: 201},
			doMock: func() {
				testHelper.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, in models.CreateCostumeIn) (*models.Costume, error) {
						assert.Equal(t, "Sarafan", in.Title)
						assert.Equal(t, "500", in.Price.String())
						assert.Equal(t, "/img/sarafan.jpg", in.ImageURL)
						assert.Equal(t, 1, in.CategoryID)
						assert.Equal(t, 10, in.SubCategoryID)
						assert.Equal(t, models.AgeCategoryChildren, in.AgeCategory)
						assert.Nil(t, in.Size)
						return sarafan(), nil
					})
			},
		},
		{
			name:        "update characteristics only",
			method:      http.MethodPut,
			urlCalled:   "/api/v1/costumes/5",
			body:        `{"characteristics":{"material":"cotton"}}`,
			expectation: Expectation{wantRes: costumeJSON, wantCode: 200},
			doMock: func() {
				testHelper.mockService.EXPECT().
					Update(gomock.Any(), 5, models.UpdateCostumeIn{Characteristics: models.Characteristics{"material": "cotton"}}).
					Return(sarafan(), nil)
			},
		},
		{
			name:        "delete",
			method:      http.MethodDelete,
			urlCalled:   "/api/v1/costumes/5",
			expectation: Expectation{wantRes: `{"success":true}`, wantCode: 200},
			doMock: func() {
				testHelper.mockService.EXPECT().Delete(gomock.Any(), 5).Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.urlCalled, body)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			got, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(got), "\n"))
		})
	}
}

func Test_Handler_writeMiddlewares(t *testing.T) {
	deny := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.NoContent(http.StatusUnauthorized)
		}
	}
	testHelper := costumeTestHelper(t, deny)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		url := "/api/v1/costumes/5"
		if method == http.MethodPost {
			url = "/api/v1/costumes"
		}
		req := httptest.NewRequest(method, url, nil)
		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
	}

	testHelper.mockService.EXPECT().Get(gomock.Any(), 5).Return(sarafan(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/costumes/5", nil)
	rec := httptest.NewRecorder()
	testHelper.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
