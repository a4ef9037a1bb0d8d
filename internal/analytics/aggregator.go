package analytics

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"gamedex/internal/kv"
)

// Archiver receives each accepted, already-sanitized event for
// long-term storage. Errors are swallowed by the aggregator.
type Archiver interface {
	Save(ev Event) error
}

// Aggregator owns the analytics state. It is instantiated once at
// startup and passed to call sites; there is no package-level
// singleton. A mutex serializes tracking calls from concurrent
// request handlers.
type Aggregator struct {
	mu      sync.Mutex
	store   kv.Store
	state   State
	archive Archiver
	now     func() time.Time
	log     zerolog.Logger
}

// Option configures an Aggregator at construction time.
type Option func(*Aggregator)

// WithArchive attaches an event archive. Archive failures never
// affect tracking.
func WithArchive(a Archiver) Option {
	return func(agg *Aggregator) { agg.archive = a }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(agg *Aggregator) { agg.now = now }
}

// WithLogger overrides the default global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(agg *Aggregator) { agg.log = l }
}

// New builds an aggregator backed by store, adopting persisted state
// when it exists and is younger than the retention window. A missing,
// unreadable, or stale state silently yields a fresh one.
func New(store kv.Store, opts ...Option) *Aggregator {
	agg := &Aggregator{
		store: store,
		now:   time.Now,
		log:   zlog.Logger,
	}
	for _, opt := range opts {
		opt(agg)
	}
	agg.state = agg.loadState()
	return agg
}

func (a *Aggregator) loadState() State {
	now := a.now()

	raw, ok, err := a.store.Get(StateKey)
	if err != nil {
		a.log.Debug().Err(err).Msg("analytics state unreadable, starting fresh")
		return newState(now)
	}
	if !ok {
		return newState(now)
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		a.log.Debug().Err(err).Msg("analytics state corrupt, starting fresh")
		return newState(now)
	}

	age := now.Sub(time.UnixMilli(st.LastUpdated))
	if age > maxStateAge {
		a.log.Debug().Dur("age", age).Msg("analytics state stale, starting fresh")
		return newState(now)
	}

	if st.Events == nil {
		st.Events = []Event{}
	}
	if st.DailyStats == nil {
		st.DailyStats = DailyStats{}
	}
	return st
}

// TrackEvent records a single event. Unknown event types are logged
// and dropped; storage failures are counted and ignored. It never
// fails observably.
func (a *Aggregator) TrackEvent(eventType EventType, data map[string]any) {
	if !eventType.valid() {
		a.log.Warn().Str("type", string(eventType)).Msg("dropping event of unknown type")
		incDropped()
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	ev := Event{
		Type:      eventType,
		Data:      sanitize(data),
		Timestamp: now.UnixMilli(),
	}

	a.state.Events = append(a.state.Events, ev)
	if len(a.state.Events) > maxEvents {
		a.state.Events = a.state.Events[len(a.state.Events)-maxEvents:]
	}

	bumpTotals(&a.state.Totals, eventType)

	day := dayKey(now)
	daily := a.state.DailyStats[day]
	bumpTotals(&daily, eventType)
	a.state.DailyStats[day] = daily

	a.state.LastUpdated = now.UnixMilli()
	a.persist()

	if a.archive != nil {
		if err := a.archive.Save(ev); err != nil {
			a.log.Warn().Err(err).Msg("event archive write failed")
		}
	}
	incEvent(eventType)
}

// bumpTotals increments the counter matching eventType. game_favorite
// has no counter and is a no-op here.
func bumpTotals(t *Totals, eventType EventType) {
	switch eventType {
	case EventPageView:
		t.PageViews++
	case EventGamePlay:
		t.GamePlays++
	case EventSearchQuery:
		t.Searches++
	case EventFilterUsed:
		t.FilterUses++
	}
}

// persist writes the full state to the store, swallowing failures.
// Callers must hold a.mu.
func (a *Aggregator) persist() {
	raw, err := json.Marshal(a.state)
	if err != nil {
		a.log.Warn().Err(err).Msg("analytics state marshal failed")
		incStoreFailure()
		return
	}
	if err := a.store.Set(StateKey, raw); err != nil {
		a.log.Warn().Err(err).Msg("analytics state write failed")
		incStoreFailure()
	}
}

// TrackPageView records a page_view for the given navigation path.
func (a *Aggregator) TrackPageView(path string) {
	a.TrackEvent(EventPageView, map[string]any{"path": path})
}

// TrackGamePlay records a game_play for the given game slug.
func (a *Aggregator) TrackGamePlay(slug string) {
	a.TrackEvent(EventGamePlay, map[string]any{"gameSlug": slug})
}

// TrackSearch records a search_query. Debouncing is the caller's
// concern, not the aggregator's.
func (a *Aggregator) TrackSearch(query string) {
	a.TrackEvent(EventSearchQuery, map[string]any{"query": query})
}

// TrackFilterUsed records a filter_used with the filter kind and the
// chosen value.
func (a *Aggregator) TrackFilterUsed(filterType, filterValue string) {
	a.TrackEvent(EventFilterUsed, map[string]any{
		"filterType":  filterType,
		"filterValue": filterValue,
	})
}

// TrackGameFavorite records a game_favorite. Favorites update no
// lifetime counter; only the event buffer sees them.
func (a *Aggregator) TrackGameFavorite(slug string) {
	a.TrackEvent(EventGameFavorite, map[string]any{"gameSlug": slug})
}

// Summary returns a snapshot for dashboard consumers. The raw event
// buffer is intentionally excluded.
func (a *Aggregator) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	daily := make(DailyStats, len(a.state.DailyStats))
	for day, t := range a.state.DailyStats {
		daily[day] = t
	}
	return Summary{
		Totals:      a.state.Totals,
		DailyStats:  daily,
		LastUpdated: a.state.LastUpdated,
		EventCount:  len(a.state.Events),
	}
}

// Reset replaces the state with a fresh one and deletes the persisted
// entry. Intended for test and development use; idempotent.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = newState(a.now())
	if err := a.store.Delete(StateKey); err != nil {
		a.log.Warn().Err(err).Msg("analytics state delete failed")
		incStoreFailure()
	}
}
