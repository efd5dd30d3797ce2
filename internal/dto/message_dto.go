package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	Content  string      `json:"content" validate:"required"`
	TopicIds []uuid.UUID `json:"topic_ids"`
}

type MessageAuthor struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type MessageTopic struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// MessageResponse is the wire shape clients expect for a message: the
// record together with its author display fields and resolved topic set.
type MessageResponse struct {
	Id        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	Author    MessageAuthor  `json:"author"`
	Topics    []MessageTopic `json:"topics"`
}

// ListMessagesQuery mirrors the feed query string: order=asc|desc,
// limit caps the window, topics filters by topic id (ANY-match).
type ListMessagesQuery struct {
	Order  string      `query:"order"`
	Limit  int         `query:"limit"`
	Topics []uuid.UUID `query:"-"`
}
