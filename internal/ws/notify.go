package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationEvent is the wire shape of one lifecycle update.
type GenerationEvent struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	Status    string `json:"status,omitempty"`
	PublicURL string `json:"pdf_url,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Events broadcasts pipeline lifecycle updates through a hub. It satisfies
// the pipeline's Notifier dependency.
type Events struct {
	hub *Hub
}

func NewEvents(hub *Hub) *Events {
	return &Events{hub: hub}
}

func (e *Events) GenerationStarted(id uuid.UUID, filename string) {
	e.publish(GenerationEvent{
		Type:     "generation_started",
		ID:       id.String(),
		Filename: filename,
	})
}

func (e *Events) GenerationFinished(id uuid.UUID, filename string, status string, publicURL string) {
	e.publish(GenerationEvent{
		Type:      "generation_finished",
		ID:        id.String(),
		Filename:  filename,
		Status:    status,
		PublicURL: publicURL,
	})
}

func (e *Events) publish(evt GenerationEvent) {
	if e == nil || e.hub == nil {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	e.hub.Broadcast(b)
}
