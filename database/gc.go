package database

import (
	"log"
	"time"

	"eduportal/config"

	"github.com/robfig/cron/v3"
)

// StartSessionGC schedules the purge of expired session rows. The storage
// already drops expired rows on read; this keeps abandoned sessions from
// accumulating in the file.
func StartSessionGC() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.SessionGCSpec, purgeExpiredSessions); err != nil {
		log.Printf("Error scheduling session GC: %v", err)
		return c
	}
	c.Start()
	return c
}

func purgeExpiredSessions() {
	res := Database.Db.
		Where("expires_at > 0 AND expires_at <= ?", time.Now().Unix()).
		Delete(&SessionRecord{})
	if res.Error != nil {
		log.Printf("[SESSION-GC] purge failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[SESSION-GC] purged %d expired sessions", res.RowsAffected)
	}
}
