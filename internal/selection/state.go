package selection

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/2beens/workoutexplorer/internal/exercises"
	"github.com/2beens/workoutexplorer/internal/reference"
	"github.com/2beens/workoutexplorer/internal/telemetry/metrics"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrSuperseded is returned when a newer selection was made while the fetch was in flight.
	// The fetched result is discarded.
	ErrSuperseded      = errors.New("selection superseded by a newer one")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownLanguage = errors.New("unknown language")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=selection_test

type exercisesFetcher interface {
	FetchExercises(ctx context.Context, filter exercises.Filter) ([]exercises.EnrichedExercise, error)
}

// Snapshot is the committed view of the state. Filter is the selection
// Exercises were fetched for; Selected is the latest selection, which differs
// while its fetch is in flight or after it failed.
type Snapshot struct {
	Filter    exercises.Filter
	Selected  exercises.Filter
	Exercises []exercises.EnrichedExercise
	// Seq is the sequence number of the fetch that produced Exercises.
	Seq uint64
}

// State holds the current filter selection and the exercise list committed
// for it. Every selection change starts a fetch tagged with a new sequence
// number; only the fetch with the latest number gets committed.
type State struct {
	fetcher   exercisesFetcher
	reference reference.Data
	metrics   *metrics.Manager

	mu              sync.Mutex
	filter          exercises.Filter
	latestSeq       uint64
	committedSeq    uint64
	committedFilter exercises.Filter
	exercises       []exercises.EnrichedExercise
}

func NewState(fetcher exercisesFetcher, referenceData reference.Data, metricsManager *metrics.Manager) *State {
	return &State{
		fetcher:   fetcher,
		reference: referenceData,
		metrics:   metricsManager,
	}
}

func (s *State) Reference() reference.Data {
	return s.reference
}

// Filter returns the latest selection, committed or not.
func (s *State) Filter() exercises.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Filter:    s.committedFilter,
		Selected:  s.filter,
		Exercises: slices.Clone(s.exercises),
		Seq:       s.committedSeq,
	}
}

// SetCategory selects a category (0 for all) and re-fetches the exercises.
func (s *State) SetCategory(ctx context.Context, categoryID int) ([]exercises.EnrichedExercise, error) {
	if categoryID < 0 || !s.reference.HasCategory(categoryID) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, categoryID)
	}
	return s.update(ctx, func(f *exercises.Filter) {
		f.CategoryID = categoryID
	})
}

// SetLanguage selects a language (0 for all) and re-fetches the exercises.
func (s *State) SetLanguage(ctx context.Context, languageID int) ([]exercises.EnrichedExercise, error) {
	if languageID < 0 || !s.reference.HasLanguage(languageID) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, languageID)
	}
	return s.update(ctx, func(f *exercises.Filter) {
		f.LanguageID = languageID
	})
}

// Refresh re-fetches the exercises for the current selection.
func (s *State) Refresh(ctx context.Context) ([]exercises.EnrichedExercise, error) {
	return s.update(ctx, func(*exercises.Filter) {})
}

func (s *State) update(ctx context.Context, mutate func(f *exercises.Filter)) (_ []exercises.EnrichedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "selection.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	mutate(&s.filter)
	s.latestSeq++
	seq := s.latestSeq
	filter := s.filter
	s.mu.Unlock()

	span.SetAttributes(
		attribute.Int64("selection.seq", int64(seq)),
		attribute.Int("filter.category", filter.CategoryID),
		attribute.Int("filter.language", filter.LanguageID),
	)

	// the result becomes shared state, it must not depend on the caller staying around
	fetched, fetchErr := s.fetcher.FetchExercises(context.WithoutCancel(ctx), filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.latestSeq {
		log.Debugf("selection: discarding result of fetch %d, latest is %d", seq, s.latestSeq)
		if s.metrics != nil {
			s.metrics.CounterSupersededFetches.Inc()
		}
		return nil, ErrSuperseded
	}

	if fetchErr != nil {
		// previous list stays visible
		return nil, fetchErr
	}

	s.exercises = fetched
	s.committedSeq = seq
	s.committedFilter = filter

	return slices.Clone(fetched), nil
}
