// file: internal/realtime/events.go
// version: 2.0.0
// guid: 9e8d7f6a-5c4b-3a21-0f9e-8d7c6b5a4392

package realtime

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// EventType defines the type of real-time event
type EventType string

const (
	EventCatalogReloaded     EventType = "catalog.reloaded"
	EventCatalogReloadFailed EventType = "catalog.reload_failed"
	EventConnection          EventType = "connection.established"
)

// HeartbeatInterval is how often idle SSE connections receive a heartbeat.
var HeartbeatInterval = 15 * time.Second

// Event represents a real-time event to send to clients
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// Client represents a connected SSE client
type Client struct {
	ID      string
	Channel chan *Event
	types   map[EventType]bool // empty means every type
	mu      sync.RWMutex
}

// NewClient creates a new SSE client
func NewClient(id string) *Client {
	return &Client{
		ID:      id,
		Channel: make(chan *Event, 16),
		types:   make(map[EventType]bool),
	}
}

// Subscribe restricts the client to the given event type. A client with no
// subscriptions receives everything.
func (c *Client) Subscribe(t EventType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[t] = true
}

// Unsubscribe removes a previously subscribed event type.
func (c *Client) Unsubscribe(t EventType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.types, t)
}

// Wants reports whether the client should receive events of type t.
func (c *Client) Wants(t EventType) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types) == 0 || c.types[t]
}

// EventHub manages SSE connections and event distribution
type EventHub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewEventHub creates a new event hub
func NewEventHub() *EventHub {
	return &EventHub{
		clients: make(map[string]*Client),
	}
}

// RegisterClient registers a new client
func (h *EventHub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	log.Printf("[DEBUG] realtime: client %s registered, total clients: %d", client.ID, len(h.clients))
}

// UnregisterClient removes a client
func (h *EventHub) UnregisterClient(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, exists := h.clients[clientID]; exists {
		close(client.Channel)
		delete(h.clients, clientID)
		log.Printf("[DEBUG] realtime: client %s unregistered, remaining clients: %d", clientID, len(h.clients))
	}
}

// Broadcast sends an event to every interested client. Slow clients whose
// buffer is full miss the event.
func (h *EventHub) Broadcast(event *Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, client := range h.clients {
		if !client.Wants(event.Type) {
			continue
		}
		select {
		case client.Channel <- event:
			count++
		default:
			log.Printf("[WARN] realtime: client %s channel full, dropping event", client.ID)
		}
	}
	return count
}

// SendCatalogReloaded announces a newly installed catalog version.
func (h *EventHub) SendCatalogReloaded(version string, groups, courses, skipped int) {
	h.Broadcast(&Event{
		Type:      EventCatalogReloaded,
		Timestamp: time.Now(),
		Data: map[string]any{
			"catalog_version": version,
			"groups":          groups,
			"courses":         courses,
			"skipped_rows":    skipped,
		},
	})
}

// SendCatalogReloadFailed announces a failed reload. version is the catalog
// still in service, empty if none.
func (h *EventHub) SendCatalogReloadFailed(version string, err error) {
	h.Broadcast(&Event{
		Type:      EventCatalogReloadFailed,
		Timestamp: time.Now(),
		Data: map[string]any{
			"catalog_version": version,
			"error":           err.Error(),
		},
	})
}

// GetClientCount returns the number of connected clients
func (h *EventHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func writeEvent(c *gin.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// HandleSSE handles a Server-Sent Events connection. The optional "types"
// query parameter is a comma separated list of event types to receive.
func (h *EventHub) HandleSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache, no-transform")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	client := NewClient(ulid.Make().String())
	for _, t := range strings.Split(c.Query("types"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			client.Subscribe(EventType(t))
		}
	}

	h.RegisterClient(client)
	defer h.UnregisterClient(client.ID)

	_ = writeEvent(c, &Event{
		Type:      EventConnection,
		Timestamp: time.Now(),
		Data:      map[string]any{"client_id": client.ID},
	})

	ticker := time.NewTicker(HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case event, ok := <-client.Channel:
			if !ok {
				return
			}
			if err := writeEvent(c, event); err != nil {
				log.Printf("[WARN] realtime: writing to client %s: %v", client.ID, err)
				return
			}
		case <-ticker.C:
			_ = writeEvent(c, map[string]any{
				"type":      "heartbeat",
				"timestamp": time.Now(),
			})
		}
	}
}
