package models

import (
	"time"
)

// Read records that a user has read a book, unique per pair. Rows go away
// with either side of the edge.
type Read struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_book" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	BookID    uint      `gorm:"not null;index;uniqueIndex:idx_user_book" json:"book_id"`
	Book      Book      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"book"`
	CreatedAt time.Time `json:"created_at"`
}
