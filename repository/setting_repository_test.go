package repository

import (
	"path/filepath"
	"testing"

	"github.com/GishenCBoraluwa/fisheries-management/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.UserSetting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGetOrCreate_ReturnsDefaultsOnFirstAccess(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	s, err := repo.GetOrCreate(7)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if !s.EmailNotifications || s.SMSNotifications || !s.PriceAlerts || !s.WeatherAlerts {
		t.Errorf("unexpected notification defaults: %+v", s)
	}
	if s.Language != "en" || s.Theme != "light" {
		t.Errorf("unexpected defaults: language=%q theme=%q", s.Language, s.Theme)
	}

	// second access returns the same row
	again, err := repo.GetOrCreate(7)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != s.ID {
		t.Errorf("expected the same row, got %d and %d", s.ID, again.ID)
	}
}

func TestMergeUpdate_TouchesOnlyProvidedFields(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	if _, err := repo.GetOrCreate(7); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := repo.MergeUpdate(7, map[string]any{
		"theme":             "dark",
		"sms_notifications": true,
	})
	if err != nil {
		t.Fatalf("merge update: %v", err)
	}

	if s.Theme != "dark" || !s.SMSNotifications {
		t.Errorf("updates not applied: %+v", s)
	}
	if s.Language != "en" || !s.EmailNotifications {
		t.Errorf("untouched fields changed: %+v", s)
	}
}
