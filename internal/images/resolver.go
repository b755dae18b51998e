package images

import (
	"context"

	"github.com/2beens/workoutexplorer/internal/exercises"
	"github.com/2beens/workoutexplorer/internal/telemetry/metrics"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultPlaceholderURL = "https://via.placeholder.com/150"

// Source tells where a resolved display image came from.
type Source string

const (
	SourceMain        Source = "main"
	SourceEmbedded    Source = "embedded"
	SourcePlaceholder Source = "placeholder"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=images_test

type mainImageLookup interface {
	GetMainImage(ctx context.Context, exerciseID int) (string, bool, error)
}

type Resolver struct {
	lookup         mainImageLookup
	placeholderURL string
	metrics        *metrics.Manager
}

func NewResolver(lookup mainImageLookup, placeholderURL string, metricsManager *metrics.Manager) *Resolver {
	if placeholderURL == "" {
		placeholderURL = DefaultPlaceholderURL
	}
	return &Resolver{
		lookup:         lookup,
		placeholderURL: placeholderURL,
		metrics:        metricsManager,
	}
}

// Resolve picks the display image of an exercise. The main image from the image
// collection wins over embedded images, the placeholder is the last resort.
// Lookup failures fall through to the next step, the result is never empty.
func (r *Resolver) Resolve(ctx context.Context, exerciseID int, embedded []exercises.Image) string {
	url, source := r.resolve(ctx, exerciseID, embedded)
	if r.metrics != nil {
		r.metrics.CounterImageResolutions.With(prometheus.Labels{"source": string(source)}).Inc()
	}
	return url
}

func (r *Resolver) resolve(ctx context.Context, exerciseID int, embedded []exercises.Image) (string, Source) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "imageResolver.resolve")
	defer span.End()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	mainUrl, found, err := r.lookup.GetMainImage(ctx, exerciseID)
	switch {
	case err != nil:
		log.Debugf("main image lookup for exercise %d failed, falling back: %s", exerciseID, err)
	case found && mainUrl != "":
		span.SetAttributes(attribute.String("image.source", string(SourceMain)))
		return mainUrl, SourceMain
	}

	for _, img := range embedded {
		if img.URL != "" {
			span.SetAttributes(attribute.String("image.source", string(SourceEmbedded)))
			return img.URL, SourceEmbedded
		}
	}

	span.SetAttributes(attribute.String("image.source", string(SourcePlaceholder)))
	return r.placeholderURL, SourcePlaceholder
}
