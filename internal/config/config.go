package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CATALOG"

type (
	Config struct {
		App       App      `mapstructure:"app"`
		Postgres  Postgres `mapstructure:"postgres"`
		Redis     Redis    `mapstructure:"redis"`
		SecretKey string   `mapstructure:"secret_key"`
		NewRelic  NewRelic `mapstructure:"new_relic"`
	}

	App struct {
		Env             string        `mapstructure:"env"`
		Name            string        `mapstructure:"name"`
		HTTPPort        int           `mapstructure:"http_port"`
		GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
		LogLevel        string        `mapstructure:"log_level"`

		CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
		IdempotencyTTL     time.Duration `mapstructure:"idempotency_ttl"`
		StatsCacheTTL      time.Duration `mapstructure:"stats_cache_ttl"`
		MigrateOnStart     bool          `mapstructure:"migrate_on_start"`
	}

	Postgres struct {
		Write Database `mapstructure:"write"`
		Read  Database `mapstructure:"read"`
	}

	Database struct {
		DbHost            string `mapstructure:"db_host"`
		DbPort            string `mapstructure:"db_port"`
		DbUser            string `mapstructure:"db_user"`
		DbPass            string `mapstructure:"db_pass"`
		DbName            string `mapstructure:"db_name"`
		DbSchema          string `mapstructure:"db_schema"`
		SSLMode           string `mapstructure:"ssl_mode"`
		MaxOpenConnection int    `mapstructure:"max_open_connections"`
		MaxIdleConnection int    `mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Db       int    `mapstructure:"db"`
	}

	NewRelic struct {
		LicenseKey string `mapstructure:"license_key"`
	}
)

// Enabled reports whether redis backed features (idempotency, stats cache) are configured.
func (r Redis) Enabled() bool {
	return r.Host != ""
}

func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=%s",
		d.DbHost, d.DbPort, d.DbUser, d.DbPass, d.DbName, d.DbSchema, d.SSLMode,
	)
}

type loadOptions struct {
	fileName    string
	searchPaths []string
	dotEnvFiles []string
}

type LoadOption func(*loadOptions)

func WithConfigFileName(name string) LoadOption {
	return func(o *loadOptions) { o.fileName = name }
}

func WithConfigFileSearchPaths(paths ...string) LoadOption {
	return func(o *loadOptions) { o.searchPaths = append(o.searchPaths, paths...) }
}

func WithDotEnv(files ...string) LoadOption {
	return func(o *loadOptions) { o.dotEnvFiles = append(o.dotEnvFiles, files...) }
}

// Load reads config.yaml (optional), then .env (optional), then CATALOG_* env vars.
// Later sources win.
func Load(opts ...LoadOption) (Config, error) {
	o := &loadOptions{
		fileName:    "config",
		searchPaths: []string{"/config", ".", "./config"},
	}
	for _, opt := range opts {
		opt(o)
	}

	// a missing .env is the normal case outside local development
	_ = godotenv.Load(o.dotEnvFiles...)

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(o.fileName)
	v.SetConfigType("yaml")
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Postgres.Read.DbHost == "" {
		cfg.Postgres.Read = cfg.Postgres.Write
	}

	return cfg, nil
}

// every key needs a default so AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "go-costume-catalog")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.graceful_timeout", 10*time.Second)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.cors_allowed_origins", []string{"*"})
	v.SetDefault("app.idempotency_ttl", 24*time.Hour)
	v.SetDefault("app.stats_cache_ttl", 30*time.Second)
	v.SetDefault("app.migrate_on_start", false)

	for _, role := range []string{"write", "read"} {
		prefix := "postgres." + role + "."
		v.SetDefault(prefix+"db_host", "")
		v.SetDefault(prefix+"db_port", "5432")
		v.SetDefault(prefix+"db_user", "postgres")
		v.SetDefault(prefix+"db_pass", "")
		v.SetDefault(prefix+"db_name", "catalog")
		v.SetDefault(prefix+"db_schema", "public")
		v.SetDefault(prefix+"ssl_mode", "disable")
		v.SetDefault(prefix+"max_open_connections", 10)
		v.SetDefault(prefix+"max_idle_connections", 10)
		v.SetDefault(prefix+"conn_max_lifetime", 3)
	}
	v.SetDefault("postgres.write.db_host", "localhost")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("secret_key", "")
	v.SetDefault("new_relic.license_key", "")
}
