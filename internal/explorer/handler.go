package explorer

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/2beens/workoutexplorer/internal/exercises"
	"github.com/2beens/workoutexplorer/internal/favorites"
	"github.com/2beens/workoutexplorer/internal/middleware"
	"github.com/2beens/workoutexplorer/internal/reference"
	"github.com/2beens/workoutexplorer/internal/selection"
	"github.com/2beens/workoutexplorer/internal/telemetry/metrics"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"
	"github.com/2beens/workoutexplorer/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=explorer_test

type selectionState interface {
	Reference() reference.Data
	Snapshot() selection.Snapshot
	SetCategory(ctx context.Context, categoryID int) ([]exercises.EnrichedExercise, error)
	SetLanguage(ctx context.Context, languageID int) ([]exercises.EnrichedExercise, error)
	Refresh(ctx context.Context) ([]exercises.EnrichedExercise, error)
}

type favoritesStore interface {
	Entries() []favorites.Entry
	Find(id int) (favorites.Entry, bool)
	Toggle(ctx context.Context, exercise exercises.EnrichedExercise) ([]favorites.Entry, error)
}

// Card is what the rendering layer needs to show one exercise.
type Card struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	CategoryID      int    `json:"categoryId"`
	Image           string `json:"image"`
	DescriptionHTML string `json:"descriptionHtml"`
	IsFavorite      bool   `json:"isFavorite"`
}

type FavoriteCard struct {
	Card
	SavedAt time.Time `json:"savedAt"`
}

type ReferenceResponse struct {
	Categories []exercises.Category `json:"categories"`
	Languages  []exercises.Language `json:"languages"`
	// LoadError is set when a vocabulary could not be loaded and is shown empty.
	LoadError string `json:"loadError,omitempty"`
}

// SelectionResponse carries the visible list with the filter it was fetched for.
// Selected differs from Filter while the latest selection has not been committed.
type SelectionResponse struct {
	Filter    exercises.Filter `json:"filter"`
	Selected  exercises.Filter `json:"selected"`
	Exercises []Card           `json:"exercises"`
	Total     int              `json:"total"`
}

type FavoritesResponse struct {
	Favorites []FavoriteCard `json:"favorites"`
	Total     int            `json:"total"`
}

type ToggleResponse struct {
	ID         int  `json:"id"`
	IsFavorite bool `json:"isFavorite"`
	Total      int  `json:"total"`
}

type Handler struct {
	state        selectionState
	favorites    favoritesStore
	referenceErr error
}

// NewHandler creates the handler. referenceErr is the (non-fatal) error the
// reference data loader reported, if any.
func NewHandler(state selectionState, favoritesStore favoritesStore, referenceErr error) *Handler {
	return &Handler{
		state:        state,
		favorites:    favoritesStore,
		referenceErr: referenceErr,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	toggleAllowedPerMin int,
) {
	mainRouter.HandleFunc("/reference", handler.HandleReference).Methods("GET").Name("reference")
	mainRouter.HandleFunc("/selection", handler.HandleSelection).Methods("GET").Name("selection")
	mainRouter.HandleFunc("/selection/category/{id}", handler.HandleSetCategory).Methods("PUT").Name("set-category")
	mainRouter.HandleFunc("/selection/language/{id}", handler.HandleSetLanguage).Methods("PUT").Name("set-language")
	mainRouter.HandleFunc("/selection/refresh", handler.HandleRefresh).Methods("POST").Name("refresh")
	mainRouter.HandleFunc("/favorites", handler.HandleFavorites).Methods("GET").Name("favorites")

	favoritesRouter := mainRouter.PathPrefix("/favorites").Subrouter()
	favoritesRouter.HandleFunc("/{id}/toggle", handler.HandleToggleFavorite).Methods("POST").Name("toggle-favorite")
	if rateLimiter != nil && toggleAllowedPerMin > 0 {
		favoritesRouter.Use(middleware.RateLimit(rateLimiter, "favorites-toggle", toggleAllowedPerMin, metricsManager))
	}
}

func (handler *Handler) HandleReference(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.explorer.reference")
	defer span.End()

	data := handler.state.Reference()
	resp := ReferenceResponse{
		Categories: data.Categories(),
		Languages:  data.Languages(),
	}
	if handler.referenceErr != nil {
		resp.LoadError = handler.referenceErr.Error()
	}

	pkg.WriteJSON(w, http.StatusOK, resp)
}

func (handler *Handler) HandleSelection(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.explorer.selection")
	defer span.End()

	snapshot := handler.state.Snapshot()
	handler.writeSelection(w, snapshot)
}

func (handler *Handler) HandleSetCategory(w http.ResponseWriter, r *http.Request) {
	handler.handleSelectionChange(w, r, "handler.explorer.setCategory", handler.state.SetCategory)
}

func (handler *Handler) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	handler.handleSelectionChange(w, r, "handler.explorer.setLanguage", handler.state.SetLanguage)
}

func (handler *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.explorer.refresh")
	defer span.End()

	if _, err := handler.state.Refresh(ctx); err != nil {
		span.RecordError(err)
		writeSelectionError(w, err)
		return
	}

	snapshot := handler.state.Snapshot()
	handler.writeSelection(w, snapshot)
}

func (handler *Handler) handleSelectionChange(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	set func(ctx context.Context, id int) ([]exercises.EnrichedExercise, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("selection.id", id))

	if _, err := set(ctx, id); err != nil {
		span.RecordError(err)
		writeSelectionError(w, err)
		return
	}

	// the latest committed state, a newer selection may have landed meanwhile
	snapshot := handler.state.Snapshot()
	handler.writeSelection(w, snapshot)
}

func (handler *Handler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.explorer.favorites")
	defer span.End()

	filter := handler.state.Snapshot().Filter
	entries := handler.favorites.Entries()

	cards := make([]FavoriteCard, 0, len(entries))
	for _, e := range entries {
		card := newCard(e.EnrichedExercise, filter, true)
		cards = append(cards, FavoriteCard{Card: card, SavedAt: e.SavedAt})
	}

	pkg.WriteJSON(w, http.StatusOK, FavoritesResponse{
		Favorites: cards,
		Total:     len(cards),
	})
}

// HandleToggleFavorite toggles an exercise from the committed list. An exercise
// no longer listed can still be removed, using its saved snapshot.
func (handler *Handler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.explorer.toggleFavorite")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise, found := handler.findExercise(id)
	if !found {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	entries, err := handler.favorites.Toggle(ctx, exercise)
	if err != nil {
		span.RecordError(err)
		log.Errorf("toggle favorite %d: %s", id, err)
		http.Error(w, "failed to save favorites", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ToggleResponse{
		ID:         id,
		IsFavorite: favorites.Contains(entries, id),
		Total:      len(entries),
	})
}

func (handler *Handler) findExercise(id int) (exercises.EnrichedExercise, bool) {
	list := handler.state.Snapshot().Exercises
	idx := slices.IndexFunc(list, func(e exercises.EnrichedExercise) bool {
		return e.ID == id
	})
	if idx >= 0 {
		return list[idx], true
	}

	if entry, ok := handler.favorites.Find(id); ok {
		return entry.EnrichedExercise, true
	}

	return exercises.EnrichedExercise{}, false
}

func (handler *Handler) writeSelection(w http.ResponseWriter, snapshot selection.Snapshot) {
	entries := handler.favorites.Entries()

	cards := make([]Card, 0, len(snapshot.Exercises))
	for _, e := range snapshot.Exercises {
		cards = append(cards, newCard(e, snapshot.Filter, favorites.Contains(entries, e.ID)))
	}

	pkg.WriteJSON(w, http.StatusOK, SelectionResponse{
		Filter:    snapshot.Filter,
		Selected:  snapshot.Selected,
		Exercises: cards,
		Total:     len(cards),
	})
}

func writeSelectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selection.ErrUnknownCategory), errors.Is(err, selection.ErrUnknownLanguage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, selection.ErrSuperseded):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("fetch exercises: %s", err)
		http.Error(w, "failed to fetch exercises", http.StatusBadGateway)
	}
}

func newCard(e exercises.EnrichedExercise, filter exercises.Filter, isFavorite bool) Card {
	return Card{
		ID:              e.ID,
		Name:            e.Name,
		CategoryID:      e.CategoryID,
		Image:           e.DisplayImage,
		DescriptionHTML: selection.Describe(e.Exercise, filter),
		IsFavorite:      isFavorite,
	}
}
