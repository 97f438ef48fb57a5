package cache

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Resolution kinds stored in the cache.
const (
	KindChord = "chord"
	KindScale = "scale"
)

// Entry is one cached resolution: the hashed lookup key and the raw JSON
// payload the LLM returned. Entries never expire; a model change produces a
// different key, so stale rows are simply never read again.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Kind      string    `gorm:"not null;index" json:"kind"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "resolution_cache"
}

// Store is the persistent resolution cache. A nil inner handle makes every
// lookup a miss and every write a no-op, so the service degrades to
// LLM-plus-fallback when no database is configured.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get looks up a cached resolution by key. A missing row or a read error is a
// plain miss; the caller cannot distinguish them and should not need to.
func (s *Store) Get(key string) (string, bool) {
	if s == nil || s.db == nil {
		return "", false
	}

	var entry Entry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		return "", false
	}
	return entry.Value, true
}

// Set upserts a resolution. Errors propagate so the caller can log them, but
// cache writes are best effort and never fail a resolution.
func (s *Store) Set(key, kind, value string) error {
	if s == nil || s.db == nil {
		return nil
	}

	entry := Entry{Key: key, Kind: kind, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error
}
