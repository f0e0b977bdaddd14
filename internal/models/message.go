package models

import (
	"time"
)

// Message is a short post by a user. Immutable after creation except for
// deletion, which also removes its likes.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Text      string    `gorm:"size:140;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
