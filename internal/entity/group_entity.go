package entity

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	Id        uuid.UUID
	Name      string
	OwnerId   string
	CreatedAt time.Time
}
