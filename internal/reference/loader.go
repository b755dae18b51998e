package reference

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/2beens/workoutexplorer/internal/exercises"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=reference_test

type vocabularySource interface {
	GetCategories(ctx context.Context) ([]exercises.Category, error)
	GetLanguages(ctx context.Context) ([]exercises.Language, error)
}

// Data holds the category and language vocabularies of a session.
// A vocabulary that failed to load is empty; only the "All" option (0) is valid then.
type Data struct {
	categories []exercises.Category
	languages  []exercises.Language
}

func NewData(categories []exercises.Category, languages []exercises.Language) Data {
	return Data{
		categories: append([]exercises.Category{}, categories...),
		languages:  append([]exercises.Language{}, languages...),
	}
}

func (d Data) Categories() []exercises.Category {
	return slices.Clone(d.categories)
}

func (d Data) Languages() []exercises.Language {
	return slices.Clone(d.languages)
}

func (d Data) HasCategory(id int) bool {
	if id == 0 {
		return true
	}
	return slices.ContainsFunc(d.categories, func(c exercises.Category) bool {
		return c.ID == id
	})
}

func (d Data) HasLanguage(id int) bool {
	if id == 0 {
		return true
	}
	return slices.ContainsFunc(d.languages, func(l exercises.Language) bool {
		return l.ID == id
	})
}

type Loader struct {
	source vocabularySource

	once sync.Once
	data Data
	err  error
}

func NewLoader(source vocabularySource) *Loader {
	return &Loader{
		source: source,
	}
}

// Load fetches both vocabularies concurrently, once per session. The returned
// Data is always usable; err only reports which vocabularies degraded to empty.
func (l *Loader) Load(ctx context.Context) (Data, error) {
	l.once.Do(func() {
		l.data, l.err = l.load(ctx)
	})
	return l.data, l.err
}

func (l *Loader) load(ctx context.Context) (_ Data, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "referenceLoader.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		wg                     sync.WaitGroup
		categories             []exercises.Category
		languages              []exercises.Language
		categoriesErr, langErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		categories, categoriesErr = l.source.GetCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		languages, langErr = l.source.GetLanguages(ctx)
	}()
	wg.Wait()

	if categoriesErr != nil {
		log.Errorf("reference data: categories unavailable, filter degrades to All: %s", categoriesErr)
		categories = nil
		err = multierr.Append(err, fmt.Errorf("load categories: %w", categoriesErr))
	}
	if langErr != nil {
		log.Errorf("reference data: languages unavailable, filter degrades to All: %s", langErr)
		languages = nil
		err = multierr.Append(err, fmt.Errorf("load languages: %w", langErr))
	}

	log.Debugf("reference data loaded: %d categories, %d languages", len(categories), len(languages))

	return NewData(categories, languages), err
}
