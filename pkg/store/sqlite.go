package store

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

// KVRecord is the single sqlite table everything persists into; each key
// holds one whole collection serialized as a JSON array.
type KVRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

type sqliteStore struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) RecordStore { return &sqliteStore{db} }

func (s *sqliteStore) Read(key string) (string, bool) {
	var rec KVRecord
	if err := s.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] read %s: %v", key, err)
		}
		return "", false
	}
	return rec.Value, true
}

func (s *sqliteStore) Write(key, value string) bool {
	if err := s.db.Save(&KVRecord{Key: key, Value: value}).Error; err != nil {
		log.Printf("[store] write %s: %v", key, err)
		return false
	}
	return true
}
