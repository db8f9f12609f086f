package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	dispatchQueueKey = "dispatch_events"
)

// DispatchEvent - уведомление центру диспетчеризации о том, что запрос
// геолокации перешел в статус located
type DispatchEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	PhoneNumber string    `json:"phone_number"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Accuracy    float64   `json:"accuracy"`
	LocatedAt   time.Time `json:"located_at"`
}

// Publisher - интерфейс для постановки уведомлений в очередь
type Publisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish добавляет событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
