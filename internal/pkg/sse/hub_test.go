package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("attendance")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("attendance")
	defer cleanup2()

	hub.Publish("attendance", Event{Topic: "attendance", Event: "checkin"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, "checkin", event.Event)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestPublishDoesNotCrossTopics(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("attendance")
	defer cleanup()

	hub.Publish("other", Event{Topic: "other", Event: "noise"})

	select {
	case event := <-ch:
		t.Fatalf("unexpected event %q", event.Event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("attendance")
	require.Equal(t, 1, hub.SubscriberCount("attendance"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("attendance"))

	// Publishing after cleanup must not panic on the closed channel.
	hub.Publish("attendance", Event{Event: "checkin"})
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("attendance")
	defer cleanup()

	// Fill the buffer and keep publishing; the publisher must not stall.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish("attendance", Event{Event: "checkin"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The subscriber still drains what fit in its buffer.
	assert.NotEmpty(t, len(ch))
}
