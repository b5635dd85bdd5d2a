package middleware

import (
	"github.com/karnaval/go-costume-catalog/internal/common/idgenerator"
	"github.com/karnaval/go-costume-catalog/internal/config"
	"github.com/karnaval/go-costume-catalog/internal/repositories"
)

type AppMiddleware struct {
	conf      config.Config
	cacheRepo repositories.CacheRepository
	idGen     idgenerator.Generator
}

// NewMiddleware takes a nil cacheRepo when redis is not configured, the
// idempotency check is then a pass through.
func NewMiddleware(conf config.Config, cacheRepo repositories.CacheRepository) AppMiddleware {
	return AppMiddleware{
		conf:      conf,
		cacheRepo: cacheRepo,
		idGen:     idgenerator.New(),
	}
}
