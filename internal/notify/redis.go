// Package notify publishes messaging events to Redis pub/sub for delivery
// fan-out (websocket gateways, push senders) running elsewhere.
package notify

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/MuscleMap-ME/musclemap-messaging/config"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/relay"
)

type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewRedisNotifier(client *redis.Client, cfg *config.Config) *RedisNotifier {
	return &RedisNotifier{client: client, channel: cfg.Redis.EventChannel}
}

type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (n *RedisNotifier) MessageSent(ctx context.Context, event relay.MessageSentEvent) error {
	return n.publish(ctx, "message.sent", event)
}

func (n *RedisNotifier) ReceiptUpdated(ctx context.Context, event relay.ReceiptUpdatedEvent) error {
	return n.publish(ctx, "receipt.updated", event)
}

func (n *RedisNotifier) ConversationUpgraded(ctx context.Context, event relay.ConversationUpgradedEvent) error {
	return n.publish(ctx, "conversation.upgraded", event)
}

func (n *RedisNotifier) publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(envelope{Type: eventType, Payload: payload})
	if err != nil {
		return errors.Wrap(err, "notifier.publish.Marshal")
	}
	if err := n.client.Publish(ctx, n.channel, body).Err(); err != nil {
		return errors.Wrap(err, "notifier.publish.Publish")
	}
	return nil
}
