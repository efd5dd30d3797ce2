package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutably authored by one user and carries zero or more topic
// tags. The topic set is fixed at creation time.
type Message struct {
	Id        uuid.UUID
	Content   string
	UserId    string
	GroupId   uuid.UUID
	CreatedAt time.Time

	// Expanded relations, populated on reads.
	Author *User
	Topics []Topic
}

// HasTopic reports whether the message carries the given topic id.
func (m *Message) HasTopic(topicId uuid.UUID) bool {
	for _, t := range m.Topics {
		if t.Id == topicId {
			return true
		}
	}
	return false
}
