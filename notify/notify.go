package notify

import (
	"context"
	"court_manager/model"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, event model.ReservationEvent) error
}

// Subscriber hands out a stream of raw event payloads for one court. The
// returned close func must be called once the caller stops reading.
type Subscriber interface {
	Subscribe(ctx context.Context, courtID uint) (<-chan []byte, func() error, error)
}

type Broker interface {
	Publisher
	Subscriber
}

func CourtChannel(courtID uint) string {
	return fmt.Sprintf("court:%d", courtID)
}

type RedisBroker struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisBroker(rdb *redis.Client, log *zap.Logger) *RedisBroker {
	return &RedisBroker{rdb: rdb, log: log}
}

func (b *RedisBroker) Publish(ctx context.Context, event model.ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}
	if err := b.rdb.Publish(ctx, CourtChannel(event.CourtId), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context, courtID uint) (<-chan []byte, func() error, error) {
	pubsub := b.rdb.Subscribe(ctx, CourtChannel(courtID))
	// wait for the subscription confirmation so a dead redis fails here
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to court %d: %w", courtID, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()
	b.log.Debug("subscribed to court feed", zap.Uint("courtId", courtID))
	return out, pubsub.Close, nil
}

// NopBroker is used when redis is disabled.
type NopBroker struct{}

func (NopBroker) Publish(context.Context, model.ReservationEvent) error { return nil }

func (NopBroker) Subscribe(context.Context, uint) (<-chan []byte, func() error, error) {
	return nil, nil, ErrFeedDisabled
}
