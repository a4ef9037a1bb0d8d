package archive

import (
	"time"

	"gorm.io/datatypes"
)

// Event is a sanitized analytics event as archived in Postgres. The
// archive is an optional long-term mirror of the in-memory event
// buffer; the aggregator's own state never depends on it.
type Event struct {
	ID uint `gorm:"primaryKey"`

	CreatedAt time.Time

	// ExpiresAt is the timestamp after which this event is eligible
	// for deletion by the retention worker.
	ExpiresAt *time.Time `gorm:"index"`

	Type string `gorm:"index;size:32;not null"`

	// Data holds the sanitized auxiliary fields of the event, so new
	// payload shapes need no schema changes.
	Data datatypes.JSONMap `gorm:"type:json"`
}
