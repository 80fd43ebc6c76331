package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	ch1, cancel1 := hub.Subscribe()
	ch2, cancel2 := hub.Subscribe()
	defer cancel1()
	defer cancel2()

	assert.Equal(t, 2, hub.SubscriberCount())

	ev := SaleEvent{SaleID: 1, SaleNumber: "SALE-20250101120000", FinalAmountCents: 30000}
	hub.Broadcast(ev)

	for _, ch := range []<-chan SaleEvent{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, ev.SaleNumber, got.SaleNumber)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestHubCancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)

	// Cancelling twice is safe.
	cancel()
}

func TestHubDropsEventsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	// Overfill the buffer; extra events are dropped, not blocked on.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Broadcast(SaleEvent{SaleID: uint(i + 1)})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	require.Equal(t, subscriberBuffer, received)
}

func TestHubBroadcastWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	hub.Broadcast(SaleEvent{SaleID: 1})
	assert.Equal(t, 0, hub.SubscriberCount())
}
