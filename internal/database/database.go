package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fretsound/fretboard-api/internal/cache"
)

// Connect opens the Postgres connection for the resolution cache. An empty
// URL is not an error: the service runs without persistence and every cache
// lookup misses.
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		log.Printf("⚠️  DATABASE_URL not set, resolution cache disabled")
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("✅ Database connected")
	return db, nil
}

// Migrate runs schema migrations for the cache tables.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := db.AutoMigrate(&cache.Entry{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
