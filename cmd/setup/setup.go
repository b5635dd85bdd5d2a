package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/karnaval/go-costume-catalog/internal/common/cache"
	"github.com/karnaval/go-costume-catalog/internal/common/graceful"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	cMetrics "github.com/karnaval/go-costume-catalog/internal/common/metrics"
	"github.com/karnaval/go-costume-catalog/internal/common/retry"
	"github.com/karnaval/go-costume-catalog/internal/config"
	"github.com/karnaval/go-costume-catalog/internal/migrations"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"
	"github.com/karnaval/go-costume-catalog/internal/repositories"
	"github.com/karnaval/go-costume-catalog/internal/services"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const (
	driverPgx   = "pgx"
	driverNRPgx = "nrpgx"
)

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoSQL   repositories.SQLRepository
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Metrics   cMetrics.Metrics
}

// Init wires every dependency of command. The returned stoppers release
// what was opened so far and are valid even when err is not nil.
func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		err = fmt.Errorf("failed to load config: %w", err)
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	if err = xlog.Init(cfg.App.Name,
		xlog.WithEnv(cfg.App.Env),
		xlog.WithLevel(cfg.App.LogLevel),
		xlog.WithCaller(true),
	); err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)
	if newRelic != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			newRelic.Shutdown(10 * time.Second)
			return nil
		})
	}

	// metrics
	mtc := cMetrics.New()
	if err = monitoring.RegisterPrometheus(mtc.PrometheusRegisterer()); err != nil {
		err = fmt.Errorf("failed register monitoring prometheus: %w", err)
		return
	}

	driver := driverPgx
	if newRelic != nil {
		driver = driverNRPgx
	}

	writeDB, readDB, err := setupPostgres(ctx, driver, cfg)
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil && readDB != writeDB {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}

	if cfg.App.MigrateOnStart {
		if err = migrations.Up(ctx, writeDB); err != nil {
			return
		}
	}

	// register DB write stat prometheus metrics
	if err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName); err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	if readDB != writeDB {
		// register DB read stat prometheus metrics
		if err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName); err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
	}

	var (
		redisClient *redis.Client
		cacheRepo   repositories.CacheRepository
		statsCache  cache.Client[models.CostumeStats]
	)
	if cfg.Redis.Enabled() {
		redisClient, err = setupRedis(ctx, cfg)
		if redisClient != nil {
			stopper = append(stopper, func(ctx context.Context) error { return redisClient.Close() })
		}
		if err != nil {
			err = fmt.Errorf("failed connect to redis: %w", err)
			return
		}

		// register redis prometheus metrics
		if err = mtc.RegisterRedis(redisClient, cfg.App.Name, command); err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}

		cacheRepo = repositories.NewCacheRepository(redisClient)
		statsCache = cache.NewRedisClient[models.CostumeStats](redisClient, cfg.App.Name+":")
	} else {
		xlog.Warn(ctx, "redis is not configured, idempotency is off and stats are cached in memory")

		inMemory := cache.NewInMemoryClient[models.CostumeStats]()
		stopper = append(stopper, func(ctx context.Context) error {
			inMemory.Close()
			return nil
		})
		statsCache = inMemory
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	// register service
	srv := services.New(cfg, sqlRepo, statsCache, mtc)

	setup.NewRelic = newRelic
	setup.WriteDB = writeDB
	setup.ReadDB = readDB
	setup.Cache = redisClient
	setup.RepoSQL = sqlRepo
	setup.RepoCache = cacheRepo
	setup.Service = srv
	setup.Metrics = mtc

	return setup, stopper, nil
}

func setupPostgres(ctx context.Context, driver string, conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(ctx, driver, conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	if conf.Postgres.Read == conf.Postgres.Write {
		return writeDB, writeDB, nil
	}

	readDB, err := initDB(ctx, driver, conf.Postgres.Read)
	if err != nil {
		return writeDB, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(ctx context.Context, driver string, pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	db, err := sql.Open(driver, pgConf.DSN())
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	retryer := retry.NewExponentialBackOff(retry.Config{MaxElapsedTime: 30 * time.Second})
	err = retryer.Retry(ctx, "postgres.ping."+pgConf.DbHost, func() error {
		return db.PingContext(ctx)
	}, func(err error) error {
		_ = db.Close()
		return err
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func setupRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})

	retryer := retry.NewExponentialBackOff(retry.Config{MaxElapsedTime: 30 * time.Second})
	err := retryer.Retry(ctx, "redis.ping", func() error {
		return client.Ping(ctx).Err()
	}, func(err error) error {
		return err
	})

	return client, err
}

// setupNR returns nil when no license key is configured.
func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if cfg.NewRelic.LicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		func(nrCfg *newrelic.Config) {
			nrCfg.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); err != nil {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
