package middleware

import (
	"os"
	"testing"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/config"
	"github.com/karnaval/go-costume-catalog/internal/repositories"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newTestMiddleware(conf config.Config, cacheRepo repositories.CacheRepository) *AppMiddleware {
	m := NewMiddleware(conf, cacheRepo)
	return &m
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(xlog.Replace(zap.New(core)))
	return logs
}
