// Package archive mirrors accepted analytics events into Postgres for
// long-term retention. It is optional (enabled by APP_DATABASE_URL)
// and fully fail-open: a broken archive degrades to no archiving,
// never to a tracking error.
package archive

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gamedex/internal/analytics"
	"gamedex/internal/config"
)

// Store writes events to the archive database.
type Store struct {
	db            *gorm.DB
	retentionDays int
}

// Connect opens a GORM connection to APP_DATABASE_URL (PostgreSQL
// URL) and migrates the events table.
func Connect(cfg *config.Config) (*Store, error) {
	dsn := strings.TrimSpace(cfg.DatabaseURL)
	if dsn == "" {
		return nil, errors.New("APP_DATABASE_URL is required (PostgreSQL URL)")
	}
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil, errors.New("APP_DATABASE_URL must be a postgres:// or postgresql:// URL")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{PrepareStmt: true})
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}

	if err := db.AutoMigrate(&Event{}); err != nil {
		return nil, fmt.Errorf("migrate archive schema: %w", err)
	}

	return &Store{db: db, retentionDays: cfg.RetentionDays}, nil
}

// Save appends one sanitized event. Implements analytics.Archiver.
func (s *Store) Save(ev analytics.Event) error {
	return s.db.Create(toRecord(ev, s.retentionDays, time.Now())).Error
}

// toRecord converts an aggregator event into its archive row,
// stamping an expiry when retention is enabled.
func toRecord(ev analytics.Event, retentionDays int, now time.Time) *Event {
	data := datatypes.JSONMap{}
	for k, v := range ev.Data {
		data[k] = v
	}

	createdAt := time.UnixMilli(ev.Timestamp)
	if ev.Timestamp == 0 {
		createdAt = now
	}

	rec := &Event{
		CreatedAt: createdAt,
		Type:      string(ev.Type),
		Data:      data,
	}
	if retentionDays > 0 {
		t := createdAt.Add(time.Duration(retentionDays) * 24 * time.Hour)
		rec.ExpiresAt = &t
	}
	return rec
}
