package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTestDB points the shared db handle at a fresh in-memory SQLite
// database. Every call gets its own database so state never leaks between
// tests, and the shelf cache is cleared for the same reason.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	db.DB = gdb
	utils.GetCache().Delete(shelfCacheKey)
}

func mustSignup(t *testing.T, username, email string) *models.User {
	t.Helper()
	user, err := Signup(username, email, "password123")
	if err != nil {
		t.Fatalf("signup %s: %v", username, err)
	}
	return user
}

func countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	q := db.DB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return count
}
