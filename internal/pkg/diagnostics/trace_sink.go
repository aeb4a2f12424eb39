package diagnostics

import (
	"context"
	"log/slog"
	"time"

	"mortgageschedule/internal/pkg/consts"
	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/service/interfaces"
)

// RedisTraceSink writes every trace line to the structured log and, when the
// context carries a trace id, appends it to a per-run Redis list.
type RedisTraceSink struct {
	store     interfaces.RedisStoreOperations
	retention time.Duration
}

func NewRedisTraceSink(store interfaces.RedisStoreOperations, retention time.Duration) *RedisTraceSink {
	return &RedisTraceSink{store: store, retention: retention}
}

func TraceKey(traceID string) string {
	return consts.TraceKeyPrefix + traceID
}

// Trace never fails. Redis errors are logged and dropped.
func (s *RedisTraceSink) Trace(ctx context.Context, message string) {
	logger.CtxInfo(ctx, message, slog.String("channel", "trace"))

	traceID := logger.GetTraceID(ctx)
	if s.store == nil || traceID == "" {
		return
	}

	key := TraceKey(traceID)
	if err := s.store.RPush(ctx, key, message); err != nil {
		logger.CtxError(ctx, log_messages.ErrorAppendingTraceLine, err, slog.String("key", key))
		return
	}
	if _, err := s.store.Expire(ctx, key, s.retention); err != nil {
		logger.CtxError(ctx, log_messages.ErrorAppendingTraceLine, err, slog.String("key", key))
	}
}

// Lines returns the retained trace of one run in append order.
func (s *RedisTraceSink) Lines(ctx context.Context, traceID string) ([]string, error) {
	key := TraceKey(traceID)
	lines, err := s.store.LRange(ctx, key, 0, -1)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorReadingTraceLines, err, slog.String("key", key))
		return nil, err
	}
	return lines, nil
}
