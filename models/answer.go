package models

import (
	"time"
)

// Answer is an append-only attempt record. Repeated correct attempts are
// kept; only the first one per (team, question) awards points.
type Answer struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Content    string    `gorm:"size:255;not null" json:"content"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
	TeamID     uint32    `gorm:"not null;index:idx_answer_team_question" json:"team_id"`
	QuestionID uint32    `gorm:"not null;index:idx_answer_team_question" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Answer) TableName() string {
	return "enigma_answer"
}
