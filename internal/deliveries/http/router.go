package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/karnaval/go-costume-catalog/internal/common/graceful"
	commonhttp "github.com/karnaval/go-costume-catalog/internal/common/http"
	"github.com/karnaval/go-costume-catalog/internal/common/http/middleware"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/common/metrics"
	"github.com/karnaval/go-costume-catalog/internal/config"
	"github.com/karnaval/go-costume-catalog/internal/deliveries/http/health"
	"github.com/karnaval/go-costume-catalog/internal/repositories"
	"github.com/karnaval/go-costume-catalog/internal/services"

	v1category "github.com/karnaval/go-costume-catalog/internal/deliveries/http/v1/category"
	v1costume "github.com/karnaval/go-costume-catalog/internal/deliveries/http/v1/costume"
	v1subcategory "github.com/karnaval/go-costume-catalog/internal/deliveries/http/v1/sub_category"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router, tests drive it with httptest.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title GO COSTUME CATALOG API DOCUMENTATION
// @version 1.0
// @description Catalog of a costume rental: categories, subcategories and costumes.

// @host localhost:8080
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	srv *services.Services,
	mtc metrics.Metrics,
) *svc {
	app := echo.New()
	app.HideBanner = true
	app.HTTPErrorHandler = commonhttp.HTTPErrorHandler

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(m.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())
	app.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: conf.App.CORSAllowedOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			"X-Secret-Key", "X-Idempotency-Key",
		},
	}))

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-request-id", xlog.RequestID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	if conf.Environment() != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	reg := prometheus.DefaultRegisterer
	if mtc != nil {
		reg = mtc.PrometheusRegisterer()
	}
	app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metrics.FlattenName(conf.App.Name),
		Registerer: reg,
	}))
	promHandler := echoprometheus.NewHandler()
	if gatherer, ok := reg.(prometheus.Gatherer); ok {
		promHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer})
	}
	app.GET("/metrics", promHandler)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup, sqlRepo, cacheRepo)

	// v1Group, reads are public and writes need the secret key
	v1Group := apiGroup.Group("/v1")
	writes := []echo.MiddlewareFunc{m.InternalAuth, m.CheckIdempotentRequest}
	v1category.New(v1Group, srv.Category, writes...)
	v1subcategory.New(v1Group, srv.SubCategory, writes...)
	v1costume.New(v1Group, srv.Costume, writes...)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	xlog.Info(ctx, "[HTTP] routes registered", xlog.Int("routes", len(app.Routes())))

	return svc
}
