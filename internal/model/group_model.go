package model

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	OwnerId   string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Group) TableName() string {
	return "groups"
}
