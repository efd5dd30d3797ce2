package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BroadcastRecord struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Subject   string         `gorm:"type:varchar(128);not null;index"`
	GroupId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (BroadcastRecord) TableName() string {
	return "broadcast_records"
}
