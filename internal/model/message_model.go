package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string    `gorm:"type:text;not null"`
	UserId    string    `gorm:"type:varchar(255);not null;index"`
	GroupId   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User   User    `gorm:"foreignKey:UserId"`
	Topics []Topic `gorm:"many2many:message_topics"`
}

func (Message) TableName() string {
	return "messages"
}

// MessageTopic is the explicit join model so migrations own the table shape.
type MessageTopic struct {
	MessageId uuid.UUID `gorm:"type:uuid;primaryKey"`
	TopicId   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MessageTopic) TableName() string {
	return "message_topics"
}
