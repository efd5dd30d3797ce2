package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

type GroupResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerId   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}
