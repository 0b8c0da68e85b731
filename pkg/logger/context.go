package logger

import (
	"context"

	"github.com/rs/zerolog"
)

func (l *Logger) attach(ctx context.Context, entry *zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, entry)
}

// WithField returns ctx carrying key=value on every later log line.
func (l *Logger) WithField(ctx context.Context, key string, value any) context.Context {
	entry := l.entry(ctx).With().Interface(key, value).Logger()
	return l.attach(ctx, &entry)
}

func (l *Logger) WithFields(ctx context.Context, fields map[string]any) context.Context {
	builder := l.entry(ctx).With()
	for k, v := range fields {
		builder = builder.Interface(k, v)
	}
	entry := builder.Logger()
	return l.attach(ctx, &entry)
}

func (l *Logger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return l.WithField(ctx, "request_id", requestID)
}

func (l *Logger) WithOrderID(ctx context.Context, orderID string) context.Context {
	return l.WithField(ctx, "order_id", orderID)
}

func (l *Logger) WithCustomerID(ctx context.Context, customerID string) context.Context {
	return l.WithField(ctx, "customer_id", customerID)
}

func (l *Logger) WithSKU(ctx context.Context, sku string) context.Context {
	return l.WithField(ctx, "sku", sku)
}

func (l *Logger) WithAgent(ctx context.Context, agent string) context.Context {
	return l.WithField(ctx, "agent", agent)
}

func (l *Logger) WithWorkflow(ctx context.Context, name, runID string) context.Context {
	return l.WithFields(ctx, map[string]any{"workflow": name, "run_id": runID})
}
