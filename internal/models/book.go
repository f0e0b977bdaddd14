package models

import (
	"time"
)

// DefaultCoverURL is used when a book is added without a cover image.
const DefaultCoverURL = "/static/images/book_logo.png"

type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Author    string    `gorm:"size:200" json:"author"`
	CoverURL  string    `gorm:"default:'/static/images/book_logo.png'" json:"cover_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
