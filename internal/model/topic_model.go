package model

import (
	"time"

	"github.com/google/uuid"
)

// Topic stores NameKey, the lower-cased projection of Name. The composite
// unique index on (group_id, name_key) enforces case-insensitive uniqueness
// at the storage layer, so concurrent creators racing on the same name hit a
// constraint violation instead of inserting a duplicate.
type Topic struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	NameKey   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_topics_group_name_key"`
	Color     string    `gorm:"type:varchar(32);not null"`
	GroupId   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_topics_group_name_key"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Topic) TableName() string {
	return "topics"
}
