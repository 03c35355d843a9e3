package observability

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "boatshow-portal"

// Logger writes structured logs, pulling request-scoped fields from the context.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger builds a JSON logger in production and a console logger
// elsewhere. LOG_LEVEL overrides the default level.
func NewLogger() *Logger {
	cfg := zap.NewProductionConfig()
	if os.Getenv("GO_ENV") != "production" {
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && os.Getenv("LOG_LEVEL") != "" {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	zapLogger, err := cfg.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", serviceName)),
	)
	if err != nil {
		zapLogger = zap.NewExample()
	}
	return &Logger{zapLogger: zapLogger}
}

// NewLoggerFromZap wraps an existing zap logger.
func NewLoggerFromZap(z *zap.Logger) *Logger {
	return &Logger{zapLogger: z.WithOptions(zap.AddCallerSkip(1))}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

func (l *Logger) withContext(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	if len(fields) == 0 {
		return l.zapLogger
	}
	zapFields := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}
	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.withContext(ctx).Info(msg)
}

// InfoWithError logs an expected failure, such as a rejected request, without a stack trace.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.withContext(ctx).Info(msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.withContext(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.withContext(ctx).Warn(msg)
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.withContext(ctx).Debug(msg)
}

// Metrics logs one measurement entry. Metric keys override context fields of the same name.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.zapLogger.Info("Metrics", mergeFields(ctx, fields)...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
