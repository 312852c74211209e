package service

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/jmoreno/solarops/internal/config"
	"github.com/jmoreno/solarops/internal/repository"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.InitDB(&config.DatabaseConfig{
		Driver:          "sqlite",
		Path:            ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
		AutoMigrate:     true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}
