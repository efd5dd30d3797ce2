package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"groupchat-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// relayChannel is the Redis pub/sub channel used to fan group frames out to
// the other instances of this service.
const relayChannel = "chat_cluster_events"

type groupFrame struct {
	groupID uuid.UUID
	data    []byte
}

type Hub struct {
	// Connected clients per group. A user may hold several connections
	// (multi-device), each is its own Client.
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Frames awaiting local delivery.
	broadcast chan groupFrame

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance relay. Nil means single instance.
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan groupFrame, 64),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

// Run serializes all client map mutations, including slow-client eviction
// during delivery, so a Send channel is closed exactly once.
func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRelay()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.GroupID] = append(h.clients[client.GroupID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{
				"group_id": client.GroupID,
				"user_id":  client.UserID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.GroupID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.GroupID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.GroupID]) == 0 {
					delete(h.clients, client.GroupID)
				}
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{
				"group_id": client.GroupID,
				"user_id":  client.UserID,
			})

		case frame := <-h.broadcast:
			h.deliver(frame.groupID, frame.data)
		}
	}
}

// BroadcastToGroup pushes a pre-serialized frame to every connection of the
// group. With Redis configured the frame goes through the relay channel,
// which this instance also subscribes to, so local delivery happens exactly
// once either way.
func (h *Hub) BroadcastToGroup(groupID uuid.UUID, data []byte) {
	if h.rdb == nil {
		h.broadcast <- groupFrame{groupID: groupID, data: data}
		return
	}

	payload, _ := json.Marshal(relayFrame{
		GroupID: groupID.String(),
		Message: data,
	})
	h.rdb.Publish(context.Background(), relayChannel, payload)
}

// deliver runs on the Run goroutine. A client that cannot take the frame is
// evicted here; its later unregister (from readPump teardown) finds it gone
// and is a no-op, which is what keeps the close single.
func (h *Hub) deliver(groupID uuid.UUID, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[groupID]
	if !ok {
		return
	}

	kept := clients[:0]
	for _, client := range clients {
		select {
		case client.Send <- data:
			kept = append(kept, client)
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
				"group_id": client.GroupID,
				"user_id":  client.UserID,
			})
			close(client.Send)
		}
	}

	if len(kept) == 0 {
		delete(h.clients, groupID)
	} else {
		h.clients[groupID] = kept
	}
}

type relayFrame struct {
	GroupID string          `json:"group_id"`
	Message json.RawMessage `json:"message"`
}

// subscribeToRelay delivers frames published by sibling instances to the
// clients connected here. Frames for groups with no local clients are
// dropped, which keeps the relay a single shared channel instead of one
// channel per group.
func (h *Hub) subscribeToRelay() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, relayChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var frame relayFrame
		if err := json.Unmarshal([]byte(msg.Payload), &frame); err != nil {
			h.logger.Warn("Hub", "Relay frame parse error", map[string]interface{}{"error": err.Error()})
			continue
		}

		groupID, err := uuid.Parse(frame.GroupID)
		if err != nil {
			continue
		}

		h.broadcast <- groupFrame{groupID: groupID, data: frame.Message}
	}
}
