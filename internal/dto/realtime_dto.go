package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RealtimeEnvelope is the frame pushed to websocket clients of a group and
// the payload published on the event bus for cross-instance delivery.
type RealtimeEnvelope struct {
	Type    string          `json:"type"`
	GroupId uuid.UUID       `json:"group_id"`
	Data    json.RawMessage `json:"data"`
}
