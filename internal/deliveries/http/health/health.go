package health

import (
	"context"
	"net/http"
	"time"

	commonhttp "github.com/karnaval/go-costume-catalog/internal/common/http"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"

	"github.com/labstack/echo/v4"
)

const pingTimeout = 2 * time.Second

// Pinger is anything the health check can ping, the sql pools and redis.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthHandler struct {
	db    Pinger
	cache Pinger
}

// New health handler will initialize the health/ resources endpoint. A nil
// cache is reported as disabled.
func New(app *echo.Group, db, cache Pinger) {
	hh := healthHandler{db: db, cache: cache}
	health := app.Group("/health")
	health.GET("", hh.healthCheck)
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind     string `json:"kind" example:"health"`
		Status   string `json:"status" example:"server is up and running"`
		Database string `json:"database" example:"up"`
		Redis    string `json:"redis" example:"up"`
	}
)

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server, the database and redis
// @Accept		json
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse "Server and its dependencies are up"
// @Failure 503 {object} DoHealthCheckLivenessResponse "A dependency is down"
// @Router /health [get]
func (hh healthHandler) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	res := DoHealthCheckLivenessResponse{
		Kind:     "health",
		Status:   "server is up and running",
		Database: hh.check(ctx, "database", hh.db),
		Redis:    hh.check(ctx, "redis", hh.cache),
	}

	code := http.StatusOK
	if res.Database == statusDown || res.Redis == statusDown {
		code = http.StatusServiceUnavailable
		res.Status = "server is up, a dependency is down"
	}

	return commonhttp.RestSuccessResponse(c, code, res)
}

const (
	statusUp       = "up"
	statusDown     = "down"
	statusDisabled = "disabled"
)

func (hh healthHandler) check(ctx context.Context, name string, p Pinger) string {
	if p == nil {
		return statusDisabled
	}
	if err := p.Ping(ctx); err != nil {
		xlog.Warn(ctx, "[HEALTH.CHECK]", xlog.String("dependency", name), xlog.Err(err))
		return statusDown
	}
	return statusUp
}
