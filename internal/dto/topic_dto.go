package dto

import "github.com/google/uuid"

type CreateTopicRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// TopicResponse is the wire shape clients expect for a topic.
type TopicResponse struct {
	Id      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
	GroupId uuid.UUID `json:"groupId"`
}
