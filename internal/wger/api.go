package wger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/workoutexplorer/internal/exercises"
	"github.com/2beens/workoutexplorer/internal/telemetry/metrics"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

// example API call
// https://wger.de/api/v2/exerciseinfo/?limit=200&language=2&category=8

const (
	DefaultBaseURL = "https://wger.de/api/v2"

	ExercisesPageLimit = 200
	vocabularyLimit    = 100

	defaultCacheExpire = 60 * 60 // seconds
	megabyte           = 1024 * 1024
)

const (
	resourceCategories = "exercisecategory"
	resourceLanguages  = "language"
	resourceExercises  = "exerciseinfo"
	resourceImages     = "exerciseimage"
)

type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

type NewApiParams struct {
	BaseURL    string
	HttpClient *http.Client
	// CacheSizeMB is the in-memory response cache size; 0 disables caching.
	CacheSizeMB int
	// CacheExpire in seconds, defaults to one hour.
	CacheExpire int
	// RequestsPerSecond paces outbound calls; 0 means unlimited.
	RequestsPerSecond float64
	Burst             int
	Metrics           *metrics.Manager
}

type Api struct {
	baseURL     string
	httpClient  *http.Client
	cache       *freecache.Cache
	cacheExpire int
	limiter     *rate.Limiter
	metrics     *metrics.Manager
}

func NewApi(params NewApiParams) *Api {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := params.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	api := &Api{
		baseURL:     baseURL,
		httpClient:  httpClient,
		cacheExpire: params.CacheExpire,
		limiter:     rate.NewLimiter(rate.Inf, 0),
		metrics:     params.Metrics,
	}

	if params.CacheSizeMB > 0 {
		api.cache = freecache.NewCache(params.CacheSizeMB * megabyte)
	}
	if api.cacheExpire <= 0 {
		api.cacheExpire = defaultCacheExpire
	}

	if params.RequestsPerSecond > 0 {
		burst := params.Burst
		if burst <= 0 {
			burst = 1
		}
		api.limiter = rate.NewLimiter(rate.Limit(params.RequestsPerSecond), burst)
	}

	log.Debugf("wger api client set up for [%s], cache enabled: %t", baseURL, api.cache != nil)

	return api
}

func (w *Api) GetCategories(ctx context.Context) (_ []exercises.Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "wgerApi.getCategories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	apiUrl := fmt.Sprintf("%s/%s/?limit=%d", w.baseURL, resourceCategories, vocabularyLimit)

	var resp pagedResponse[category]
	if err := w.getJSON(ctx, resourceCategories, apiUrl, "categories", &resp); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	categories := make([]exercises.Category, 0, len(resp.Results))
	for _, c := range resp.Results {
		categories = append(categories, c.toCategory())
	}
	span.SetAttributes(attribute.Int("categories.count", len(categories)))

	return categories, nil
}

func (w *Api) GetLanguages(ctx context.Context) (_ []exercises.Language, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "wgerApi.getLanguages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	apiUrl := fmt.Sprintf("%s/%s/?limit=%d", w.baseURL, resourceLanguages, vocabularyLimit)

	var resp pagedResponse[language]
	if err := w.getJSON(ctx, resourceLanguages, apiUrl, "languages", &resp); err != nil {
		return nil, fmt.Errorf("get languages: %w", err)
	}

	languages := make([]exercises.Language, 0, len(resp.Results))
	for _, l := range resp.Results {
		languages = append(languages, l.toLanguage())
	}
	span.SetAttributes(attribute.Int("languages.count", len(languages)))

	return languages, nil
}

// GetExercises queries the exercise-with-translations collection. Category and
// language constraints are applied server side when set. Results are never cached.
func (w *Api) GetExercises(ctx context.Context, query exercises.Query) (_ []exercises.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "wgerApi.getExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	limit := query.Limit
	if limit <= 0 || limit > ExercisesPageLimit {
		limit = ExercisesPageLimit
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if query.LanguageID > 0 {
		params.Set("language", strconv.Itoa(query.LanguageID))
		span.SetAttributes(attribute.Int("query.language", query.LanguageID))
	}
	if query.CategoryID > 0 {
		params.Set("category", strconv.Itoa(query.CategoryID))
		span.SetAttributes(attribute.Int("query.category", query.CategoryID))
	}

	apiUrl := fmt.Sprintf("%s/%s/?%s", w.baseURL, resourceExercises, params.Encode())

	var resp pagedResponse[exerciseInfo]
	if err := w.getJSON(ctx, resourceExercises, apiUrl, "", &resp); err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}

	exs := make([]exercises.Exercise, 0, len(resp.Results))
	for _, e := range resp.Results {
		exs = append(exs, e.toExercise())
	}
	span.SetAttributes(attribute.Int("exercises.count", len(exs)))

	return exs, nil
}

// GetMainImage looks up the image flagged as main for the exercise.
// found is false when the image collection has no main image for it.
func (w *Api) GetMainImage(ctx context.Context, exerciseID int) (_ string, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "wgerApi.getMainImage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	cacheKey := fmt.Sprintf("main-image::%d", exerciseID)
	if w.cache != nil {
		if imageBytes, err := w.cache.Get([]byte(cacheKey)); err == nil {
			log.Tracef("found main image for exercise %d in cache", exerciseID)
			return string(imageBytes), true, nil
		}
	}

	apiUrl := fmt.Sprintf(
		"%s/%s/?exercise=%d&is_main=True&limit=1",
		w.baseURL, resourceImages, exerciseID,
	)

	var resp pagedResponse[mainImage]
	if err := w.getJSON(ctx, resourceImages, apiUrl, "", &resp); err != nil {
		return "", false, fmt.Errorf("get main image for exercise %d: %w", exerciseID, err)
	}

	if len(resp.Results) == 0 || resp.Results[0].Image == "" {
		return "", false, nil
	}

	imageUrl := resp.Results[0].Image
	if w.cache != nil {
		if err := w.cache.Set([]byte(cacheKey), []byte(imageUrl), w.cacheExpire); err != nil {
			log.Errorf("failed to cache main image for exercise %d: %s", exerciseID, err)
		}
	}

	return imageUrl, true, nil
}

// getJSON fetches apiUrl and unmarshals the body into out. When cacheKey is
// not empty the raw body is served from, and stored into, the response cache.
func (w *Api) getJSON(ctx context.Context, resource, apiUrl, cacheKey string, out any) error {
	if cacheKey != "" && w.cache != nil {
		if cachedBytes, cacheErr := w.cache.Get([]byte(cacheKey)); cacheErr == nil {
			if err := json.Unmarshal(cachedBytes, out); err == nil {
				log.Tracef("found %s in cache", cacheKey)
				return nil
			} else {
				log.Errorf("failed to unmarshal cached %s: %s", cacheKey, err)
			}
		}
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	respBytes, err := w.fetch(ctx, apiUrl)
	w.countRequest(resource, err)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response bytes: %w", err)
	}

	if cacheKey != "" && w.cache != nil {
		if err := w.cache.Set([]byte(cacheKey), respBytes, w.cacheExpire); err != nil {
			log.Errorf("failed to write %s to cache: %s", cacheKey, err)
		} else {
			log.Debugf("%s cache set", cacheKey)
		}
	}

	return nil
}

func (w *Api) fetch(ctx context.Context, apiUrl string) ([]byte, error) {
	log.Debugf("calling wger api: %s", apiUrl)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain, so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: apiUrl}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response bytes: %w", err)
	}

	return respBytes, nil
}

func (w *Api) countRequest(resource string, err error) {
	if w.metrics == nil {
		return
	}

	outcome := "ok"
	var statusErr *StatusError
	switch {
	case err == nil:
	case errors.As(err, &statusErr):
		outcome = "status_" + strconv.Itoa(statusErr.StatusCode)
	default:
		outcome = "error"
	}

	w.metrics.CounterRemoteRequests.With(prometheus.Labels{
		"resource": resource,
		"outcome":  outcome,
	}).Inc()
}
