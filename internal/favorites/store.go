package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/2beens/workoutexplorer/internal/exercises"
	"github.com/2beens/workoutexplorer/internal/telemetry/metrics"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const StorageKey = "favorites"

// Entry is a snapshot of an exercise taken when it was favorited. It holds all
// that is needed to render it again without calling the remote service.
type Entry struct {
	exercises.EnrichedExercise
	SavedAt time.Time `json:"savedAt"`
}

// Contains tells if an entry with the given exercise id is in entries.
func Contains(entries []Entry, id int) bool {
	return slices.ContainsFunc(entries, func(e Entry) bool {
		return e.ID == id
	})
}

// Store is the set of favorite exercises, keyed by exercise id. Every toggle
// writes the whole collection to storage before returning.
type Store struct {
	storage Storage
	metrics *metrics.Manager
	// ability to inject the clock (for unit testing)
	NowFunc func() time.Time

	mu      sync.Mutex
	entries []Entry
}

func NewStore(storage Storage, metricsManager *metrics.Manager) *Store {
	return &Store{
		storage: storage,
		metrics: metricsManager,
		NowFunc: time.Now,
	}
}

// Load reads the favorites from storage. A missing or unparsable value
// results in an empty set, it never fails.
func (s *Store) Load(ctx context.Context) []Entry {
	ctx, span := tracing.GlobalTracer.Start(ctx, "favorites.load")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.read(ctx)
	s.updateGauge()
	span.SetAttributes(attribute.Int("favorites.count", len(s.entries)))

	return slices.Clone(s.entries)
}

func (s *Store) read(ctx context.Context) []Entry {
	data, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			log.Debugln("favorites: nothing saved yet")
		} else {
			log.Errorf("favorites: read from storage failed, starting empty: %s", err)
		}
		return []Entry{}
	}

	var stored []Entry
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Errorf("favorites: stored value unparsable, starting empty: %s", err)
		return []Entry{}
	}

	// keep the set invariant, even if storage was edited by hand
	entries := make([]Entry, 0, len(stored))
	for _, e := range stored {
		if Contains(entries, e.ID) {
			log.Warnf("favorites: duplicate entry for exercise %d dropped", e.ID)
			continue
		}
		entries = append(entries, e)
	}

	log.Debugf("favorites: loaded %d entries", len(entries))
	return entries
}

func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

func (s *Store) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Contains(s.entries, id)
}

// Find returns the saved snapshot of the exercise, if favorited.
func (s *Store) Find(id int) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.entries, func(e Entry) bool {
		return e.ID == id
	})
	if idx < 0 {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// Toggle removes the exercise from favorites if present, appends a snapshot of
// it otherwise. The full resulting collection is persisted with a single write;
// if that write fails the favorites stay as they were.
func (s *Store) Toggle(ctx context.Context, exercise exercises.EnrichedExercise) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "favorites.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	action := "add"
	var updated []Entry
	if Contains(s.entries, exercise.ID) {
		action = "remove"
		updated = make([]Entry, 0, len(s.entries))
		for _, e := range s.entries {
			if e.ID != exercise.ID {
				updated = append(updated, e)
			}
		}
	} else {
		updated = append(slices.Clone(s.entries), Entry{
			EnrichedExercise: exercise,
			SavedAt:          s.NowFunc(),
		})
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKey, data); err != nil {
		return nil, fmt.Errorf("persist favorites: %w", err)
	}

	s.entries = updated
	s.updateGauge()
	if s.metrics != nil {
		s.metrics.CounterFavoriteToggles.With(prometheus.Labels{"action": action}).Inc()
	}
	log.Debugf("favorites: %s exercise %d, total %d", action, exercise.ID, len(updated))

	return slices.Clone(updated), nil
}

func (s *Store) updateGauge() {
	if s.metrics != nil {
		s.metrics.GaugeFavorites.Set(float64(len(s.entries)))
	}
}
