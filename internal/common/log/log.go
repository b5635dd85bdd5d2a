// Package log is a thin structured logging facade over zap.
//
// Callers import it as xlog and log with a context so request scoped
// values (request id) are attached to every line:
//
//	xlog.Info(ctx, "[CATEGORY.CREATE]", xlog.Int("id", id))
package log

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zap.Field
	Level  = zapcore.Level
	Option func(*options)
)

type options struct {
	env        string
	level      Level
	caller     bool
	callerSkip int
}

func WithEnv(env string) Option {
	return func(o *options) { o.env = strings.ToLower(env) }
}

// WithLevel accepts zap level names: debug, info, warn, error.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.caller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Init builds the process wide logger. Local environments get a colored
// console encoder, everything else gets JSON.
func Init(appName string, opts ...Option) error {
	o := &options{level: zapcore.InfoLevel, callerSkip: 1}
	for _, opt := range opts {
		opt(o)
	}

	var cfg zap.Config
	if o.env == "local" || o.env == "" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(o.level)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = !o.caller

	l, err := cfg.Build(zap.AddCallerSkip(o.callerSkip))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Store(l.With(zap.String("app", appName)))
	return nil
}

// InitForTest keeps log output away from go test runs.
func InitForTest() {
	logger.Store(zap.NewNop())
}

// Replace swaps the process logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) (restore func()) {
	prev := logger.Swap(l)
	return func() { logger.Store(prev) }
}

// Logger exposes the underlying zap logger, used to bridge integrations
// such as the new relic agent.
func Logger() *zap.Logger {
	return logger.Load()
}

func Sync() {
	_ = logger.Load().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if reqID := RequestID(ctx); reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Panic(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logger.Load().Error(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
	Sync()
	os.Exit(1)
}

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Int64(key string, val int64) Field { return zap.Int64(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Any(key string, val interface{}) Field { return zap.Any(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Time(key string, val time.Time) Field { return zap.Time(key, val) }

func Err(err error) Field { return zap.Error(err) }
