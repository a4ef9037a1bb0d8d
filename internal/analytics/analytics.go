// Package analytics accumulates client usage events into running
// totals and per-day counters, keeps a bounded buffer of recent
// events, and persists the whole state to a durable key-value store
// after every mutation. All failure modes degrade to "analytics
// silently does less": tracking never returns an error to callers.
package analytics

import "time"

// EventType identifies a tracked user action. Only the listed values
// are accepted; anything else is dropped with a warning.
type EventType string

const (
	EventPageView     EventType = "page_view"
	EventGamePlay     EventType = "game_play"
	EventSearchQuery  EventType = "search_query"
	EventFilterUsed   EventType = "filter_used"
	EventGameFavorite EventType = "game_favorite"
)

// valid reports whether t is a member of the fixed enumeration.
func (t EventType) valid() bool {
	switch t {
	case EventPageView, EventGamePlay, EventSearchQuery, EventFilterUsed, EventGameFavorite:
		return true
	}
	return false
}

// Event is a single recorded user action. Data holds sanitized
// auxiliary fields; Timestamp is epoch milliseconds. Events are
// immutable once appended.
type Event struct {
	Type      EventType      `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp int64          `json:"timestamp"`
}

// Totals are cumulative lifetime counters per event category. They
// only decrease on an explicit reset. game_favorite events have no
// matching counter.
type Totals struct {
	PageViews  int64 `json:"pageViews"`
	GamePlays  int64 `json:"gamePlays"`
	Searches   int64 `json:"searches"`
	FilterUses int64 `json:"filterUses"`
}

// DailyStats maps a UTC calendar day (YYYY-MM-DD) to that day's
// counters.
type DailyStats map[string]Totals

// State is the persisted aggregate. Its JSON shape is the storage
// format and must stay compatible with previously written data.
type State struct {
	Events      []Event    `json:"events"`
	Totals      Totals     `json:"totals"`
	DailyStats  DailyStats `json:"dailyStats"`
	LastUpdated int64      `json:"lastUpdated"`
}

// Summary is the read-only snapshot handed to dashboard consumers.
// It deliberately omits the raw event buffer so per-event detail
// (search query contents, played slugs) is never exposed.
type Summary struct {
	Totals      Totals     `json:"totals"`
	DailyStats  DailyStats `json:"dailyStats"`
	LastUpdated int64      `json:"lastUpdated"`
	EventCount  int        `json:"eventCount"`
}

const (
	// maxEvents bounds the recent-event buffer.
	maxEvents = 100

	// maxStateAge is the retention window for persisted state.
	// Anything older at load time is discarded.
	maxStateAge = 7 * 24 * time.Hour

	// StateKey is the fixed key under which State is persisted.
	StateKey = "gamedex:analytics:v1"
)

func newState(now time.Time) State {
	return State{
		Events:      []Event{},
		DailyStats:  DailyStats{},
		LastUpdated: now.UnixMilli(),
	}
}

// dayKey returns the UTC calendar-day bucket for t.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
