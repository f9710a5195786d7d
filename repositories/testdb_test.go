package repositories

import (
	"ClinicRecords/database"
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database unique to the calling test and runs
// the schema migrations against it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedTestDB loads the fixed sample dataset through the same code path the
// initialize endpoint uses.
func seedTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := NewAdminRepository(db, nil).Initialize(context.Background()); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
}

func tableCount(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
