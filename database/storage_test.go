package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&SessionRecord{}))
	return &Storage{db: db}
}

func TestStorageGetMissing(t *testing.T) {
	s := newTestStorage(t)

	val, err := s.Get("no-such-key")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorageSetGet(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("sid-1", []byte("payload"), time.Hour))
	val, err := s.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), val)
}

func TestStorageOverwrite(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("sid-1", []byte("old"), time.Hour))
	require.NoError(t, s.Set("sid-1", []byte("new"), time.Hour))

	val, err := s.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), val)
}

func TestStorageNoExpiry(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("sid-1", []byte("forever"), 0))

	var rec SessionRecord
	require.NoError(t, s.db.First(&rec, "key = ?", "sid-1").Error)
	assert.Zero(t, rec.ExpiresAt)

	val, err := s.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("forever"), val)
}

func TestStorageExpiredRowDropsOnRead(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.db.Create(&SessionRecord{
		Key:       "sid-old",
		Value:     []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}).Error)

	val, err := s.Get("sid-old")
	require.NoError(t, err)
	assert.Nil(t, val)

	var count int64
	require.NoError(t, s.db.Model(&SessionRecord{}).Where("key = ?", "sid-old").Count(&count).Error)
	assert.Zero(t, count)
}

func TestStorageDelete(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("sid-1", []byte("payload"), time.Hour))
	require.NoError(t, s.Delete("sid-1"))

	val, err := s.Get("sid-1")
	require.NoError(t, err)
	assert.Nil(t, val)

	// Deleting a missing key is not an error.
	require.NoError(t, s.Delete("sid-1"))
}

func TestStorageReset(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Set("sid-1", []byte("a"), time.Hour))
	require.NoError(t, s.Set("sid-2", []byte("b"), time.Hour))
	require.NoError(t, s.Reset())

	var count int64
	require.NoError(t, s.db.Model(&SessionRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPurgeExpiredSessions(t *testing.T) {
	s := newTestStorage(t)
	Database = DbInstance{Db: s.db}

	require.NoError(t, s.db.Create(&SessionRecord{
		Key:       "sid-stale",
		Value:     []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}).Error)
	require.NoError(t, s.Set("sid-live", []byte("live"), time.Hour))
	require.NoError(t, s.Set("sid-forever", []byte("pinned"), 0))

	purgeExpiredSessions()

	var keys []string
	require.NoError(t, s.db.Model(&SessionRecord{}).Order("key").Pluck("key", &keys).Error)
	assert.Equal(t, []string{"sid-forever", "sid-live"}, keys)
}
