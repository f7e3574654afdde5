package models

import (
	"time"
)

// Question is immutable reference data. Creation order within a world is
// load-bearing: position i in one world pairs with position i in the other.
type Question struct {
	ID            uint32    `gorm:"primarykey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Points        int       `gorm:"not null" json:"points"`
	CorrectAnswer string    `gorm:"size:255;not null" json:"-"`
	World         World     `gorm:"size:20;not null;index" json:"world"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Question) TableName() string {
	return "enigma_question"
}
