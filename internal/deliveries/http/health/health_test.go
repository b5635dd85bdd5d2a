package health

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/repositories/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHealthCheckHelper struct {
	mockCtrl  *gomock.Controller
	mockDB    *mock.MockSQLRepository
	mockCache *mock.MockCacheRepository
}

func toolTestHealthCheckHelper(t *testing.T) testHealthCheckHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	return testHealthCheckHelper{
		mockCtrl:  mockCtrl,
		mockDB:    mock.NewMockSQLRepository(mockCtrl),
		mockCache: mock.NewMockCacheRepository(mockCtrl),
	}
}

func newRouter(db, cache Pinger) *echo.Echo {
	app := echo.New()
	New(app.Group("/api"), db, cache)
	return app
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_healthCheck(t *testing.T) {
	testHelper := toolTestHealthCheckHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name     string
		router   func() *echo.Echo
		mockData mockData
		doMock   func()
	}{
		{
			name:   "all up",
			router: func() *echo.Echo { return newRouter(testHelper.mockDB, testHelper.mockCache) },
			mockData: mockData{
				wantRes:  `{"kind":"health","status":"server is up and running","database":"up","redis":"up"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockDB.EXPECT().Ping(gomock.Any()).Return(nil)
				testHelper.mockCache.EXPECT().Ping(gomock.Any()).Return(nil)
			},
		},
		{
			name:   "redis not configured",
			router: func() *echo.Echo { return newRouter(testHelper.mockDB, nil) },
			mockData: mockData{
				wantRes:  `{"kind":"health","status":"server is up and running","database":"up","redis":"disabled"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockDB.EXPECT().Ping(gomock.Any()).Return(nil)
			},
		},
		{
			name:   "database down",
			router: func() *echo.Echo { return newRouter(testHelper.mockDB, testHelper.mockCache) },
			mockData: mockData{
				wantRes:  `{"kind":"health","status":"server is up, a dependency is down","database":"down","redis":"up"}`,
				wantCode: 503,
			},
			doMock: func() {
				testHelper.mockDB.EXPECT().Ping(gomock.Any()).Return(assert.AnError)
				testHelper.mockCache.EXPECT().Ping(gomock.Any()).Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req = req.WithContext(context.Background())

			rec := httptest.NewRecorder()
			tt.router().ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
