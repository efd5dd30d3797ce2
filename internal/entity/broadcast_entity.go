package entity

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastRecord is the outbox row written alongside every published
// fan-out event. Delivery is best-effort; the record is the audit trail.
type BroadcastRecord struct {
	Id        uuid.UUID
	Subject   string
	GroupId   uuid.UUID
	Payload   []byte
	CreatedAt time.Time
}
