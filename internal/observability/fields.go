package observability

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a key-value pair carried on the context and attached to every log line.
type Field struct {
	Key   string
	Value any
}

// MetricField is a measurement attached to a single Metrics entry.
type MetricField struct {
	Key   string
	Value any
}

type contextKey struct{}

// WithFields returns a child context carrying fields in addition to the parent's.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, contextKey{}, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(contextKey{}).([]Field); ok {
		return fields
	}
	return nil
}

// mergeFields flattens context fields and metrics into zap fields. A later
// key overwrites an earlier one in place.
func mergeFields(ctx context.Context, metrics []MetricField) []zapcore.Field {
	var order []string
	byKey := make(map[string]zapcore.Field)

	add := func(key string, value any) {
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = zap.Any(key, value)
	}
	for _, f := range getObservabilityFields(ctx) {
		add(f.Key, f.Value)
	}
	for _, m := range metrics {
		add(m.Key, m.Value)
	}

	merged := make([]zapcore.Field, 0, len(order))
	for _, key := range order {
		merged = append(merged, byKey[key])
	}
	return merged
}
