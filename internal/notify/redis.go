package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
)

// RedisPublisher publishes each notice as JSON on a pub/sub channel. Publish
// failures are logged and dropped.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

func (p *RedisPublisher) Notify(ctx context.Context, n dashboard.Notice) {
	payload, err := json.Marshal(n)
	if err != nil {
		p.logger.Warn("failed to encode notice", zap.Error(err))
		return
	}
	// the request context may already be done by the time a notice is sent
	if err := p.client.Publish(context.WithoutCancel(ctx), p.channel, payload).Err(); err != nil {
		p.logger.Warn("failed to publish notice", zap.String("channel", p.channel), zap.Error(err))
	}
}
