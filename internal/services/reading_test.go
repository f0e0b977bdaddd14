package services

import (
	"errors"
	"testing"

	"bookclub/internal/db"
	"bookclub/internal/models"
)

func TestAddBookAndReadDefaults(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")

	book, err := AddBookAndRead(ada.ID, "Dune", "", "")
	if err != nil {
		t.Fatalf("AddBookAndRead: %v", err)
	}
	if book.CoverURL != models.DefaultCoverURL {
		t.Errorf("Expected placeholder cover %q, got %q", models.DefaultCoverURL, book.CoverURL)
	}
	if got := countRows(t, &models.Read{}, "user_id = ? AND book_id = ?", ada.ID, book.ID); got != 1 {
		t.Errorf("Expected exactly 1 read edge, got %d", got)
	}
}

func TestAddBookAndReadValidation(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")

	if _, err := AddBookAndRead(ada.ID, "   ", "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for missing title, got %v", err)
	}

	// Nothing persisted when validation fails
	if got := countRows(t, &models.Book{}, ""); got != 0 {
		t.Errorf("Expected 0 books, got %d", got)
	}
	if got := countRows(t, &models.Read{}, ""); got != 0 {
		t.Errorf("Expected 0 reads, got %d", got)
	}
}

func TestAddReadIdempotent(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")

	book := models.Book{Title: "Kindred", CoverURL: models.DefaultCoverURL}
	if err := db.DB.Create(&book).Error; err != nil {
		t.Fatalf("creating book: %v", err)
	}

	if err := AddRead(ada.ID, book.ID); err != nil {
		t.Fatalf("AddRead: %v", err)
	}
	if err := AddRead(ada.ID, book.ID); err != nil {
		t.Fatalf("Duplicate AddRead should be a no-op, got %v", err)
	}
	if got := countRows(t, &models.Read{}, "user_id = ? AND book_id = ?", ada.ID, book.ID); got != 1 {
		t.Errorf("Expected exactly 1 read edge, got %d", got)
	}

	if err := AddRead(ada.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a missing book, got %v", err)
	}
}

func TestRemoveRead(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")
	book, err := AddBookAndRead(ada.ID, "Snow Crash", "Neal Stephenson", "")
	if err != nil {
		t.Fatalf("AddBookAndRead: %v", err)
	}

	if err := RemoveRead(ada.ID, book.ID); err != nil {
		t.Fatalf("RemoveRead: %v", err)
	}
	if err := RemoveRead(ada.ID, book.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an absent read edge, got %v", err)
	}
}

func TestDeleteBookCascades(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")
	grace := mustSignup(t, "grace", "grace@example.com")

	book, err := AddBookAndRead(ada.ID, "The Left Hand of Darkness", "Ursula K. Le Guin", "")
	if err != nil {
		t.Fatalf("AddBookAndRead: %v", err)
	}
	if err := AddRead(grace.ID, book.ID); err != nil {
		t.Fatalf("AddRead: %v", err)
	}

	if err := DeleteBook(book.ID); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	if got := countRows(t, &models.Book{}, "id = ?", book.ID); got != 0 {
		t.Error("Book not deleted")
	}
	if got := countRows(t, &models.Read{}, "book_id = ?", book.ID); got != 0 {
		t.Error("Read edges left orphaned after book delete")
	}

	if err := DeleteBook(book.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a missing book, got %v", err)
	}
}

func TestGetShelf(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")

	read, err := AddBookAndRead(ada.ID, "Dune", "Frank Herbert", "")
	if err != nil {
		t.Fatalf("AddBookAndRead: %v", err)
	}
	unread := models.Book{Title: "Snow Crash", CoverURL: models.DefaultCoverURL}
	if err := db.DB.Create(&unread).Error; err != nil {
		t.Fatalf("creating book: %v", err)
	}

	shelf, err := GetShelf(ada.ID)
	if err != nil {
		t.Fatalf("GetShelf: %v", err)
	}
	if len(shelf.Books) != 2 {
		t.Errorf("Expected 2 books on the shelf, got %d", len(shelf.Books))
	}
	if !shelf.ReadIDs[read.ID] {
		t.Error("Shelf missing the read state for a read book")
	}
	if shelf.ReadIDs[unread.ID] {
		t.Error("Shelf marks an unread book as read")
	}
}
