package service

import (
	"context"
	"encoding/json"
	"time"

	"groupchat-be/internal/dto"
	"groupchat-be/internal/entity"
	"groupchat-be/internal/pkg/logger"
	"groupchat-be/internal/repository/unitofwork"
	"groupchat-be/pkg/events"
	pktNats "groupchat-be/pkg/nats"

	"github.com/google/uuid"
)

// IPublisherService fans created records out to the group's realtime
// channel. Delivery is best-effort: a created record that fails to publish
// is never rolled back, but every attempt leaves an outbox row.
type IPublisherService interface {
	PublishCreated(ctx context.Context, eventType string, groupId uuid.UUID, data interface{})
}

type publisherService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPublisherService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	logger logger.ILogger,
) IPublisherService {
	return &publisherService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *publisherService) PublishCreated(ctx context.Context, eventType string, groupId uuid.UUID, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("Publisher", "Failed to marshal broadcast payload", map[string]interface{}{
			"event": eventType, "error": err.Error(),
		})
		return
	}

	envelope := dto.RealtimeEnvelope{
		Type:    eventType,
		GroupId: groupId,
		Data:    payload,
	}
	envelopeBytes, _ := json.Marshal(envelope)

	// Outbox row first: the audit trail exists even when the bus is down.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := &entity.BroadcastRecord{
		Id:        uuid.New(),
		Subject:   eventType,
		GroupId:   groupId,
		Payload:   envelopeBytes,
		CreatedAt: time.Now(),
	}
	if err := uow.BroadcastRepository().Create(ctx, record); err != nil {
		s.logger.Warn("Publisher", "Failed to write broadcast record", map[string]interface{}{
			"event": eventType, "error": err.Error(),
		})
	}

	if s.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"type":     eventType,
			"group_id": groupId.String(),
			"data":     json.RawMessage(payload),
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("Publisher", "Failed to publish event", map[string]interface{}{
			"event": eventType, "error": err.Error(),
		})
	}
}
