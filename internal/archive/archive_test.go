package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/analytics"
	"gamedex/internal/config"
)

func TestToRecord(t *testing.T) {
	ts := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	ev := analytics.Event{
		Type:      analytics.EventGamePlay,
		Data:      map[string]any{"gameSlug": "hexfall"},
		Timestamp: ts.UnixMilli(),
	}

	rec := toRecord(ev, 30, time.Now())

	assert.Equal(t, "game_play", rec.Type)
	assert.Equal(t, "hexfall", rec.Data["gameSlug"])
	assert.True(t, rec.CreatedAt.Equal(ts))
	require.NotNil(t, rec.ExpiresAt)
	assert.True(t, rec.ExpiresAt.Equal(ts.Add(30*24*time.Hour)))
}

func TestToRecordZeroTimestampUsesNow(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	rec := toRecord(analytics.Event{Type: analytics.EventPageView}, 0, now)

	assert.True(t, rec.CreatedAt.Equal(now))
	assert.Nil(t, rec.ExpiresAt, "no retention means no expiry stamp")
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(&config.Config{DatabaseURL: ""})
	assert.Error(t, err)

	_, err = Connect(&config.Config{DatabaseURL: "mysql://nope"})
	assert.Error(t, err)
}
