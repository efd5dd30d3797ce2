package entity

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a user-defined label attachable to messages of its group.
// Names are unique per group under case-insensitive comparison.
type Topic struct {
	Id        uuid.UUID
	Name      string
	Color     string
	GroupId   uuid.UUID
	CreatedAt time.Time
}
