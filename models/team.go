package models

import (
	"time"
)

type Team struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	Code      string    `gorm:"size:30;unique;not null" json:"code"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "enigma_team"
}
