package database

import (
	"log"

	"eduportal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SessionRecord is one slot of the durable session key-value store.
type SessionRecord struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte
	ExpiresAt int64 `gorm:"index"` // unix seconds, 0 = no expiry
}

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the SQLite file backing the session store
func ConnectDb() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.SessionDBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open session database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// SQLite: a single writer keeps the session writes serialized
	sqlDB.SetMaxOpenConns(1)

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
