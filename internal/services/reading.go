package services

import (
	"fmt"
	"strings"
	"time"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const shelfCacheKey = "shelf:books"

// Shelf is the home-page read model: every book in the club plus the set of
// book ids the current user has read.
type Shelf struct {
	Books   []models.Book
	ReadIDs map[uint]bool
}

// AddRead marks an existing book as read by the user. Duplicate edges are a
// no-op.
func AddRead(userID, bookID uint) error {
	var book models.Book
	if err := db.DB.First(&book, bookID).Error; err != nil {
		return ErrNotFound
	}

	read := models.Read{
		UserID: userID,
		BookID: bookID,
	}
	return db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error
}

// AddBookAndRead creates a new book and marks it read by the user in a
// single transaction, so a failed read insert rolls the book back too.
func AddBookAndRead(userID uint, title, author, coverURL string) (*models.Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: book title is required", ErrValidation)
	}
	if coverURL == "" {
		coverURL = models.DefaultCoverURL
	}

	book := models.Book{
		Title:    title,
		Author:   strings.TrimSpace(author),
		CoverURL: coverURL,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		read := models.Read{
			UserID: userID,
			BookID: book.ID,
		}
		return tx.Create(&read).Error
	})
	if err != nil {
		return nil, err
	}

	utils.GetCache().Delete(shelfCacheKey)
	return &book, nil
}

// RemoveRead deletes the user's read edge for a book. An absent edge is
// reported as ErrNotFound so the user sees a notice.
func RemoveRead(userID, bookID uint) error {
	result := db.DB.
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.Read{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBook removes a book and all read edges referencing it in one
// transaction.
func DeleteBook(bookID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.First(&book, bookID).Error; err != nil {
			return ErrNotFound
		}

		if err := tx.Where("book_id = ?", bookID).Delete(&models.Read{}).Error; err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})
	if err != nil {
		return err
	}

	utils.GetCache().Delete(shelfCacheKey)
	return nil
}

// GetShelf assembles the home-page shelf for a user. The book list is shared
// across users and cached; the per-user read set is always fresh.
func GetShelf(userID uint) (*Shelf, error) {
	var books []models.Book
	if cached := utils.GetCache().Get(shelfCacheKey); cached != nil {
		if list, ok := cached.([]models.Book); ok {
			books = list
		}
	}
	if books == nil {
		if err := db.DB.Order("created_at ASC").Find(&books).Error; err != nil {
			return nil, err
		}
		utils.GetCache().Set(shelfCacheKey, books, 5*time.Minute)
	}

	var ids []uint
	db.DB.Model(&models.Read{}).Where("user_id = ?", userID).Pluck("book_id", &ids)

	readIDs := make(map[uint]bool, len(ids))
	for _, id := range ids {
		readIDs[id] = true
	}

	return &Shelf{Books: books, ReadIDs: readIDs}, nil
}

// BooksRead returns the books a user has read, most recently read first.
func BooksRead(userID uint) ([]models.Book, error) {
	var books []models.Book
	err := db.DB.
		Joins("JOIN reads ON reads.book_id = books.id").
		Where("reads.user_id = ?", userID).
		Order("reads.created_at DESC").
		Find(&books).Error
	return books, err
}
