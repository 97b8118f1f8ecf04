package queue

import (
	"context"
	"fmt"

	"github.com/claimgate/backend/internal/domain/claim"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds fulfillment stream settings
type Config struct {
	Stream           string
	MaxBatchMessages int
	MaxBatchBytes    int
}

// RedisPublisher publishes admitted claims to a Redis stream. The
// client is shared and long-lived; it is constructed once at startup
// and never closed per request.
type RedisPublisher struct {
	client   *redis.Client
	stream   string
	maxMsgs  int
	maxBytes int
	logger   *zap.Logger
}

// NewRedisPublisher creates a RedisPublisher on an existing client
func NewRedisPublisher(client *redis.Client, cfg Config, logger *zap.Logger) *RedisPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPublisher{
		client:   client,
		stream:   cfg.Stream,
		maxMsgs:  cfg.MaxBatchMessages,
		maxBytes: cfg.MaxBatchBytes,
		logger:   logger.Named("queue"),
	}
}

// NewBatch creates an empty batch bounded by the configured ceilings
func (p *RedisPublisher) NewBatch() claim.MessageBatch {
	return newStreamBatch(p.maxMsgs, p.maxBytes)
}

// Send appends every message in the batch to the stream in one
// transactional pipeline: either the whole batch is enqueued or none
// of it is. Each entry carries a unique message id for downstream
// deduplication.
func (p *RedisPublisher) Send(ctx context.Context, batch claim.MessageBatch) error {
	b, ok := batch.(*streamBatch)
	if !ok {
		return fmt.Errorf("unexpected batch type %T", batch)
	}
	if b.Len() == 0 {
		return nil
	}

	pipe := p.client.TxPipeline()
	for _, payload := range b.payloads {
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: p.stream,
			Values: map[string]any{
				"message_id": uuid.NewString(),
				"payload":    payload,
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append %d messages to stream %s: %w", b.Len(), p.stream, err)
	}

	p.logger.Debug("batch published",
		zap.String("stream", p.stream),
		zap.Int("messages", b.Len()),
		zap.Int("bytes", b.bytes),
	)
	return nil
}

// Ping checks the Redis connection
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

var _ claim.Publisher = (*RedisPublisher)(nil)
