package notify

import (
	"context"
	"court_manager/model"
	"encoding/json"
	"errors"
	"sync"
)

var ErrFeedDisabled = errors.New("live feed is disabled")

// MemoryBroker fans events out to in-process subscribers. It backs tests and
// single-instance deployments without redis.
type MemoryBroker struct {
	mu   sync.Mutex
	subs map[uint]map[chan []byte]struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[uint]map[chan []byte]struct{})}
}

func (b *MemoryBroker) Publish(_ context.Context, event model.ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[event.CourtId] {
		select {
		case ch <- payload:
		default: // slow reader, drop
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, courtID uint) (<-chan []byte, func() error, error) {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[courtID] == nil {
		b.subs[courtID] = make(map[chan []byte]struct{})
	}
	b.subs[courtID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	done := make(chan struct{})
	closeFn := func() error {
		once.Do(func() {
			close(done)
			b.mu.Lock()
			delete(b.subs[courtID], ch)
			if len(b.subs[courtID]) == 0 {
				delete(b.subs, courtID)
			}
			b.mu.Unlock()
			close(ch)
		})
		return nil
	}
	go func() {
		select {
		case <-ctx.Done():
			_ = closeFn()
		case <-done:
		}
	}()
	return ch, closeFn, nil
}
