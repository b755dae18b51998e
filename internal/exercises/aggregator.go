package exercises

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/workoutexplorer/internal/telemetry/metrics"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	PageLimit               = 200
	DefaultImageConcurrency = 16
)

// LanguagePolicy decides whether the server side language filter is trusted.
type LanguagePolicy string

const (
	// LanguagePolicyVerify drops records lacking a translation in the selected language.
	LanguagePolicyVerify LanguagePolicy = "verify"
	// LanguagePolicyTrust keeps whatever the server returned for the language filter.
	LanguagePolicyTrust LanguagePolicy = "trust"
)

func ParseLanguagePolicy(s string) (LanguagePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(LanguagePolicyVerify):
		return LanguagePolicyVerify, nil
	case string(LanguagePolicyTrust):
		return LanguagePolicyTrust, nil
	default:
		return "", fmt.Errorf("unknown language policy: %s", s)
	}
}

// Query is a single request against the exercise collection.
type Query struct {
	Limit      int
	CategoryID int
	LanguageID int
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=exercises_test

type exercisesSource interface {
	GetExercises(ctx context.Context, query Query) ([]Exercise, error)
}

type imageResolver interface {
	Resolve(ctx context.Context, exerciseID int, embedded []Image) string
}

type AggregatorOptions struct {
	LanguagePolicy LanguagePolicy
	// ImageConcurrency caps parallel image lookups per batch.
	ImageConcurrency int
	Metrics          *metrics.Manager
}

type Aggregator struct {
	source           exercisesSource
	resolver         imageResolver
	languagePolicy   LanguagePolicy
	imageConcurrency int
	metrics          *metrics.Manager
}

func NewAggregator(source exercisesSource, resolver imageResolver, opts AggregatorOptions) *Aggregator {
	a := &Aggregator{
		source:           source,
		resolver:         resolver,
		languagePolicy:   opts.LanguagePolicy,
		imageConcurrency: opts.ImageConcurrency,
		metrics:          opts.Metrics,
	}
	if a.languagePolicy == "" {
		a.languagePolicy = LanguagePolicyVerify
	}
	if a.imageConcurrency <= 0 {
		a.imageConcurrency = DefaultImageConcurrency
	}
	return a
}

// FetchExercises queries exercises matching the filter and resolves one display
// image per record. The whole batch is returned or an error if the exercise
// query failed or ctx was cancelled; a failed image lookup only falls back to
// the placeholder. Server order is kept.
func (a *Aggregator) FetchExercises(ctx context.Context, filter Filter) (_ []EnrichedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.fetchExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("filter.category", filter.CategoryID),
		attribute.Int("filter.language", filter.LanguageID),
	)

	if a.metrics != nil {
		defer func(begin time.Time) {
			a.metrics.HistAggregationDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	records, err := a.source.GetExercises(ctx, Query{
		Limit:      PageLimit,
		CategoryID: filter.CategoryID,
		LanguageID: filter.LanguageID,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch exercises: %w", err)
	}

	if filter.HasLanguage() && a.languagePolicy == LanguagePolicyVerify {
		verified := make([]Exercise, 0, len(records))
		for _, ex := range records {
			if ex.HasTranslation(filter.LanguageID) {
				verified = append(verified, ex)
			}
		}
		if dropped := len(records) - len(verified); dropped > 0 {
			log.Debugf("aggregator: dropped %d exercises without language %d translation", dropped, filter.LanguageID)
		}
		records = verified
	}

	enriched := make([]EnrichedExercise, len(records))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.imageConcurrency)
	for i := range records {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			enriched[i] = EnrichedExercise{
				Exercise:     records[i],
				DisplayImage: a.resolver.Resolve(gCtx, records[i].ID, records[i].Images),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve images: %w", err)
	}
	// a lookup cut short by cancellation falls back to the placeholder
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve images: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(enriched)))
	log.Debugf("aggregator: fetched %d exercises for filter %+v", len(enriched), filter)

	return enriched, nil
}
