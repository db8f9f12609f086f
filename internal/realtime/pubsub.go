package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/citysafe/emergency_location_system/pkg/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const channelPrefix = "geo_requests:events:"

// Event - событие обновления строки geo_requests, доставляемое подписанным
// консолям диспетчера
type Event struct {
	RequestID uuid.UUID `json:"request_id"`
	Status    string    `json:"status"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Accuracy  *float64  `json:"accuracy"`
}

// Publisher - интерфейс публикации realtime-событий
type Publisher interface {
	PublishLocated(ctx context.Context, event Event) error
}

// ChannelFor возвращает имя Pub/Sub канала для конкретного запроса
func ChannelFor(requestID uuid.UUID) string {
	return channelPrefix + requestID.String()
}

// RedisPublisher публикует события в Redis Pub/Sub
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// PublishLocated публикует событие located в канал запроса
func (p *RedisPublisher) PublishLocated(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal realtime event: %w", err)
	}

	if err := p.redisClient.Publish(ctx, ChannelFor(event.RequestID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish realtime event: %w", err)
	}
	return nil
}

// RedisSubscriber подписывает консоль диспетчера на события одного запроса
type RedisSubscriber struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewRedisSubscriber(client *redis.Client, logger *logrus.Logger) *RedisSubscriber {
	return &RedisSubscriber{redisClient: client, logger: logger}
}

// Subscribe возвращает канал событий для запроса и функцию отписки.
// Канал закрывается при отмене контекста или вызове функции отписки.
func (s *RedisSubscriber) Subscribe(ctx context.Context, requestID uuid.UUID) (<-chan Event, func(), error) {
	pubsub := s.redisClient.Subscribe(ctx, ChannelFor(requestID))

	// Дожидаемся подтверждения подписки, чтобы не потерять событие,
	// опубликованное сразу после возврата из Subscribe
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to request channel: %w", err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		log := logger.WithComponent(s.logger, "realtime").WithField("request_id", requestID)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.WithError(err).Error("Failed to unmarshal realtime event")
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	teardown := func() { _ = pubsub.Close() }
	return events, teardown, nil
}
