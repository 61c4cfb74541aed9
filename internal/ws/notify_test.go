package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func drainBroadcast(t *testing.T, hub *Hub) GenerationEvent {
	t.Helper()
	select {
	case raw := <-hub.broadcast:
		var evt GenerationEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		return evt
	case <-time.After(time.Second):
		t.Fatalf("no event broadcast")
		return GenerationEvent{}
	}
}

func TestEvents_GenerationStarted(t *testing.T) {
	hub := NewHub(nil)
	events := NewEvents(hub)
	id := uuid.New()

	events.GenerationStarted(id, "resume_20240315_093045.pdf")

	evt := drainBroadcast(t, hub)
	if evt.Type != "generation_started" {
		t.Fatalf("got type %q", evt.Type)
	}
	if evt.ID != id.String() || evt.Filename != "resume_20240315_093045.pdf" {
		t.Fatalf("unexpected event %+v", evt)
	}
	if _, err := time.Parse(time.RFC3339, evt.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %q", evt.Timestamp)
	}
}

func TestEvents_GenerationFinished(t *testing.T) {
	hub := NewHub(nil)
	events := NewEvents(hub)
	id := uuid.New()

	events.GenerationFinished(id, "resume.pdf", "success", "https://cdn.example.com/abc.pdf")

	evt := drainBroadcast(t, hub)
	if evt.Type != "generation_finished" {
		t.Fatalf("got type %q", evt.Type)
	}
	if evt.Status != "success" || evt.PublicURL != "https://cdn.example.com/abc.pdf" {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestEvents_NilHubIsNoop(t *testing.T) {
	events := NewEvents(nil)
	events.GenerationStarted(uuid.New(), "resume.pdf")
	events.GenerationFinished(uuid.New(), "resume.pdf", "failed", "")
}

func TestHub_BroadcastNeverBlocks(t *testing.T) {
	hub := NewHub(nil)
	// No Run loop draining: the buffered channel fills, then sends drop.
	for i := 0; i < 1000; i++ {
		hub.Broadcast([]byte("event"))
	}
}
