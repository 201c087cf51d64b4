package storage

import (
	"context"
	"nextlevel_lms/pkg/monitoring"
	"nextlevel_lms/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type instrumented struct {
	next   Medium
	driver string
}

// Instrument counts every medium call in store_operations_total and opens a span per call.
func Instrument(m Medium) Medium {
	return &instrumented{next: m, driver: DriverOf(m)}
}

func (m *instrumented) Driver() string { return m.driver }

func (m *instrumented) GetItem(ctx context.Context, key string) (string, bool, error) {
	ctx, done := m.start(ctx, "get", key)
	v, ok, err := m.next.GetItem(ctx, key)
	done(err)
	return v, ok, err
}

func (m *instrumented) SetItem(ctx context.Context, key, value string) error {
	ctx, done := m.start(ctx, "set", key)
	err := m.next.SetItem(ctx, key, value)
	done(err)
	return err
}

func (m *instrumented) RemoveItem(ctx context.Context, key string) error {
	ctx, done := m.start(ctx, "remove", key)
	err := m.next.RemoveItem(ctx, key)
	done(err)
	return err
}

func (m *instrumented) start(ctx context.Context, op, key string) (context.Context, func(error)) {
	ctx, span := tracing.Tracer().Start(ctx, "storage."+op)
	span.SetAttributes(
		attribute.String("storage.driver", m.driver),
		attribute.String("storage.key", key),
	)
	return ctx, func(err error) {
		result := "ok"
		if err != nil {
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		monitoring.StoreOperations.WithLabelValues(m.driver, op, result).Inc()
		span.End()
	}
}
