// Package notify delivers outbound notifications.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// RedisPublisher pushes notifications onto a Redis list for the mail worker
// and announces them on a pub/sub channel of the same name.
type RedisPublisher struct {
	rdb     redis.Cmdable
	channel string
	queue   string
}

// NewRedisPublisher creates a RedisPublisher. The queue key is
// "<namespace>:<channel>".
func NewRedisPublisher(rdb redis.Cmdable, namespace, channel string) *RedisPublisher {
	return &RedisPublisher{
		rdb:     rdb,
		channel: namespace + ":" + channel,
		queue:   namespace + ":" + channel + ":queue",
	}
}

// Publish enqueues n and notifies live subscribers.
func (p *RedisPublisher) Publish(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notify encode: %w", err)
	}

	_, err = p.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, p.queue, payload)
		pipe.Publish(ctx, p.channel, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("notify publish: %w", err)
	}
	return nil
}

// LogPublisher writes notifications to the application log. It is used when
// no Redis server is configured.
type LogPublisher struct {
	log *slog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log.With("component", "notify")}
}

// Publish logs n and never fails.
func (p *LogPublisher) Publish(ctx context.Context, n domain.Notification) error {
	p.log.InfoContext(ctx, "notification.published",
		slog.String("id", n.ID.String()),
		slog.String("kind", string(n.Kind)),
		slog.String("recipient_id", n.RecipientID.String()),
		slog.String("subject", n.Subject),
	)
	return nil
}
