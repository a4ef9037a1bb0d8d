package archive

import (
	"time"

	zlog "github.com/rs/zerolog/log"
)

// runRetentionOnce performs a single pass of retention cleanup,
// deleting any archived events whose ExpiresAt is in the past.
func (s *Store) runRetentionOnce() error {
	now := time.Now()
	return s.db.Where("expires_at IS NOT NULL AND expires_at <= ?", now).Delete(&Event{}).Error
}

// StartRetentionWorker launches a background goroutine that runs the
// retention cleanup once at startup and then once per day.
func (s *Store) StartRetentionWorker() {
	go func() {
		if err := s.runRetentionOnce(); err != nil {
			zlog.Error().Err(err).Msg("archive retention cleanup failed (startup)")
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := s.runRetentionOnce(); err != nil {
				zlog.Error().Err(err).Msg("archive retention cleanup failed")
			}
		}
	}()
}
