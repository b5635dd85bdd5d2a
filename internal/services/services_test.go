package services_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/karnaval/go-costume-catalog/internal/common/cache"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/common/metrics"
	"github.com/karnaval/go-costume-catalog/internal/config"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/repositories"
	"github.com/karnaval/go-costume-catalog/internal/repositories/mock"
	"github.com/karnaval/go-costume-catalog/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl                  *gomock.Controller
	config                    config.Config
	mockSQLRepository         *mock.MockSQLRepository
	mockCategoryRepository    *mock.MockCategoryRepository
	mockSubCategoryRepository *mock.MockSubCategoryRepository
	mockCostumeRepository     *mock.MockCostumeRepository
	statsCache                cache.Client[models.CostumeStats]
	registry                  *prometheus.Registry

	categoryService    services.CategoryService
	subCategoryService services.SubCategoryService
	costumeService     services.CostumeService
}

type helperOption func(*helperOptions)

type helperOptions struct {
	statsCache cache.Client[models.CostumeStats]
}

func withStatsCache(c cache.Client[models.CostumeStats]) helperOption {
	return func(o *helperOptions) { o.statsCache = c }
}

func serviceTestHelper(t *testing.T, opts ...helperOption) testServiceHelper {
	t.Helper()
	t.Parallel()

	o := &helperOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.statsCache == nil {
		inMemory := cache.NewInMemoryClient[models.CostumeStats]()
		t.Cleanup(inMemory.Close)
		o.statsCache = inMemory
	}

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockCategoryRepository := mock.NewMockCategoryRepository(mockCtrl)
	mockSubCategoryRepository := mock.NewMockSubCategoryRepository(mockCtrl)
	mockCostumeRepository := mock.NewMockCostumeRepository(mockCtrl)

	mockSQLRepository.EXPECT().GetCategoryRepository().Return(mockCategoryRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetSubCategoryRepository().Return(mockSubCategoryRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetCostumeRepository().Return(mockCostumeRepository).AnyTimes()
	mockSQLRepository.EXPECT().Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
			return steps(ctx, mockSQLRepository)
		}).AnyTimes()

	cfg := config.Config{App: config.App{StatsCacheTTL: time.Minute}}
	registry := prometheus.NewRegistry()
	srv := services.New(cfg, mockSQLRepository, o.statsCache, metrics.NewWithRegisterer(registry))

	return testServiceHelper{
		mockCtrl:                  mockCtrl,
		config:                    cfg,
		mockSQLRepository:         mockSQLRepository,
		mockCategoryRepository:    mockCategoryRepository,
		mockSubCategoryRepository: mockSubCategoryRepository,
		mockCostumeRepository:     mockCostumeRepository,
		statsCache:                o.statsCache,
		registry:                  registry,
		categoryService:           srv.Category,
		subCategoryService:        srv.SubCategory,
		costumeService:            srv.Costume,
	}
}

func ptr[T any](v T) *T {
	return &v
}
