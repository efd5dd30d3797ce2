package service

import (
	"context"
	"encoding/json"
	"fmt"

	"groupchat-be/internal/pkg/logger"
	"groupchat-be/internal/websocket"
	"groupchat-be/pkg/events"
	pktNats "groupchat-be/pkg/nats"

	"github.com/google/uuid"
)

// IConsumerService bridges the event bus to the websocket hub: every chat
// event published anywhere lands on each instance's consumer, which forwards
// the envelope to the clients of the affected group.
type IConsumerService interface {
	Consume() error
}

type consumerService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber *pktNats.Subscriber,
	hub *websocket.Hub,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		hub:        hub,
		logger:     logger,
	}
}

func (s *consumerService) Consume() error {
	if s.subscriber == nil {
		s.logger.Warn("Consumer", "Event bus not configured, realtime fan-out disabled", nil)
		return nil
	}
	return s.subscriber.Subscribe("chat.>", "chat-ws-forwarder", s.handleEvent)
}

func (s *consumerService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	rawGroupId, ok := payload["group_id"].(string)
	if !ok {
		// Malformed frames are acked, retrying cannot fix them.
		s.logger.Warn("Consumer", "Event without group_id, dropping", map[string]interface{}{
			"subject": event.EventType(),
		})
		return nil
	}
	groupId, err := uuid.Parse(rawGroupId)
	if err != nil {
		s.logger.Warn("Consumer", "Event with invalid group_id, dropping", map[string]interface{}{
			"subject": event.EventType(), "group_id": rawGroupId,
		})
		return nil
	}

	frame, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize realtime frame: %w", err)
	}

	s.hub.BroadcastToGroup(groupId, frame)
	return nil
}
