package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage adapts the session table to fiber's session storage interface, so a
// session survives portal restarts the way browser storage survives reloads.
type Storage struct {
	db *gorm.DB
}

// NewStorage returns a Storage bound to the global database instance.
func NewStorage() *Storage {
	return &Storage{db: Database.Db}
}

func (s *Storage) Get(key string) ([]byte, error) {
	var rec SessionRecord
	err := s.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if rec.ExpiresAt != 0 && rec.ExpiresAt <= time.Now().Unix() {
		s.db.Delete(&SessionRecord{}, "key = ?", key)
		return nil, nil
	}
	return rec.Value, nil
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	var expiresAt int64
	if exp > 0 {
		expiresAt = time.Now().Add(exp).Unix()
	}
	rec := SessionRecord{Key: key, Value: val, ExpiresAt: expiresAt}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

func (s *Storage) Delete(key string) error {
	return s.db.Delete(&SessionRecord{}, "key = ?", key).Error
}

func (s *Storage) Reset() error {
	return s.db.Where("1 = 1").Delete(&SessionRecord{}).Error
}

func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
