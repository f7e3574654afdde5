package models

import (
	"time"
)

type Hint struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	TeamID     uint32    `gorm:"not null;index" json:"team_id"`
	Team       *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	QuestionID uint32    `gorm:"not null;index" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Hint) TableName() string {
	return "enigma_hint"
}
