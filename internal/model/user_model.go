package model

import "time"

type User struct {
	Id           string    `gorm:"type:varchar(255);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	Pronouns     *string   `gorm:"type:varchar(64)"`
	Bio          *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
