package redis

import (
	"context"

	"github.com/na2na-p/storefront/internal/domain"
)

// EventPublisher はRedis Pub/Subを使用した無効化イベントのシンクです。
// 配信保証はなく、購読プロセスが存在しなくても発行は成功します。
type EventPublisher struct {
	client *RedisClient
}

func NewEventPublisher(client *RedisClient) *EventPublisher {
	return &EventPublisher{
		client: client,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, channel string, event domain.InvalidationEvent) error {
	return p.client.Publish(ctx, channel, event)
}
