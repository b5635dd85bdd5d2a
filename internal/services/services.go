package services

import (
	"context"
	"sync/atomic"

	"github.com/karnaval/go-costume-catalog/internal/common/cache"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/common/metrics"
	"github.com/karnaval/go-costume-catalog/internal/config"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/repositories"
)

const statsCacheKey = "costume-stats"

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo    repositories.SQLRepository
	statsCache cache.Client[models.CostumeStats]
	metrics    metrics.Metrics

	// bumped by every invalidation, a stats read that saw it change must not
	// cache what it counted
	statsGeneration atomic.Uint64

	common service

	Category    *category
	SubCategory *subCategory
	Costume     *costume
}

// New takes a nil statsCache to keep stats in process memory, which is what
// runs when redis is not configured.
func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	statsCache cache.Client[models.CostumeStats],
	metrics metrics.Metrics,
) *Services {
	if statsCache == nil {
		statsCache = cache.NewInMemoryClient[models.CostumeStats]()
	}

	srv := &Services{
		conf:       conf,
		sqlRepo:    sqlRepo,
		statsCache: statsCache,
		metrics:    metrics,
	}
	srv.common.srv = srv
	srv.Category = (*category)(&srv.common)
	srv.SubCategory = (*subCategory)(&srv.common)
	srv.Costume = (*costume)(&srv.common)

	return srv
}

func (s *Services) catalogMetrics() *metrics.CatalogPrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetCatalogPrometheus()
}

// invalidateStats runs after every committed write. A failure only leaves
// stale stats until the ttl expires.
func (s *Services) invalidateStats(ctx context.Context) {
	s.statsGeneration.Add(1)
	if err := s.statsCache.Del(ctx, statsCacheKey); err != nil {
		xlog.Warn(ctx, "[STATS.CACHE.INVALIDATE]", xlog.Err(err))
	}
}
