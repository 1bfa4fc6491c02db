package kvstore

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Recorder receives timing for persistence operations. Implemented by
// the metrics service; nil disables instrumentation.
type Recorder interface {
	RecordKVRead(hit bool, duration time.Duration)
	ObserveKVWrite(duration time.Duration)
}

// BestEffort decorates a Store so that persistence failures are logged
// and swallowed. The stores treat the durable layer as a cache: a
// failed read means "nothing persisted" and a failed write changes
// nothing in memory.
type BestEffort struct {
	inner   Store
	logger  *zap.Logger
	metrics Recorder
}

// NewBestEffort wraps inner with the swallow-failures policy.
func NewBestEffort(inner Store, logger *zap.Logger, metrics Recorder) *BestEffort {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BestEffort{inner: inner, logger: logger, metrics: metrics}
}

// Get reports absence instead of propagating read or decode failures.
func (b *BestEffort) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	start := time.Now()
	found, err := b.inner.Get(ctx, key, dest)
	if b.metrics != nil {
		b.metrics.RecordKVRead(found && err == nil, time.Since(start))
	}
	if err != nil {
		b.logger.Warn("kv get failed", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return found, nil
}

// Set logs and discards write failures.
func (b *BestEffort) Set(ctx context.Context, key string, value interface{}) error {
	start := time.Now()
	err := b.inner.Set(ctx, key, value)
	if b.metrics != nil {
		b.metrics.ObserveKVWrite(time.Since(start))
	}
	if err != nil {
		b.logger.Warn("kv set failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

// Delete logs and discards delete failures.
func (b *BestEffort) Delete(ctx context.Context, key string) error {
	if err := b.inner.Delete(ctx, key); err != nil {
		b.logger.Warn("kv delete failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}
