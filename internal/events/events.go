// Package events broadcasts engine lifecycle events to SSE subscribers.
package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	TypeSearchStarted   = "search_started"
	TypeSearchCompleted = "search_completed"
	TypeConfigUpdated   = "config_updated"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Make serializes an event envelope; payload marshal failures degrade to
// an empty data field rather than blocking the publish path.
func Make(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// Hub fans serialized events out to subscriber channels. Slow subscribers
// lose events instead of stalling publishers.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 16)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
		}
	}
}

// SearchStarted announces a search run for a request id.
func (h *Hub) SearchStarted(reqID, query string) {
	h.Publish(Make(reqID, TypeSearchStarted, map[string]string{"query": query}))
}

// SearchCompleted carries the run's headline numbers.
func (h *Hub) SearchCompleted(reqID string, results, raw int, elapsedMS int64) {
	h.Publish(Make(reqID, TypeSearchCompleted, map[string]int64{
		"results":   int64(results),
		"raw":       int64(raw),
		"elapsedMs": elapsedMS,
	}))
}

// ConfigUpdated announces a config save so listeners can re-read.
func (h *Hub) ConfigUpdated(reqID string) {
	h.Publish(Make(reqID, TypeConfigUpdated, nil))
}
