package models

import (
	"time"
)

// Like marks a message as liked by a user, unique per pair.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_message" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	MessageID uint      `gorm:"not null;index;uniqueIndex:idx_user_message" json:"message_id"`
	Message   Message   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
