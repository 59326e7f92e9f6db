package notify

import (
	"context"
	"court_manager/model"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourtChannel(t *testing.T) {
	assert.Equal(t, "court:7", CourtChannel(7))
}

func TestMemoryBroker_DeliversOnlyToSameCourt(t *testing.T) {
	b := NewMemoryBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	one, closeOne, err := b.Subscribe(ctx, 1)
	require.NoError(t, err)
	defer closeOne()
	two, closeTwo, err := b.Subscribe(ctx, 2)
	require.NoError(t, err)
	defer closeTwo()

	require.NoError(t, b.Publish(ctx, model.ReservationEvent{Type: "reservation.created", CourtId: 1}))

	select {
	case payload := <-one:
		var ev model.ReservationEvent
		require.NoError(t, json.Unmarshal(payload, &ev))
		assert.Equal(t, "reservation.created", ev.Type)
		assert.Equal(t, uint(1), ev.CourtId)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	select {
	case <-two:
		t.Fatal("court 2 must not see court 1 events")
	default:
	}
}

func TestMemoryBroker_CloseUnsubscribes(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	ch, closeFn, err := b.Subscribe(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, closeFn())
	require.NoError(t, closeFn())

	_, open := <-ch
	assert.False(t, open)
	assert.NoError(t, b.Publish(ctx, model.ReservationEvent{CourtId: 3}))
	assert.Empty(t, b.subs)
}

func TestNopBroker(t *testing.T) {
	var b Broker = NopBroker{}
	assert.NoError(t, b.Publish(context.Background(), model.ReservationEvent{}))
	_, _, err := b.Subscribe(context.Background(), 1)
	assert.ErrorIs(t, err, ErrFeedDisabled)
}
