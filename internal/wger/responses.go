package wger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/workoutexplorer/internal/exercises"
)

// pagedResponse is the envelope of every wger collection endpoint.
type pagedResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// categoryRef is either a full category object or a bare id,
// depending on the endpoint version.
type categoryRef struct {
	ID   int
	Name string
}

func (c *categoryRef) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var cat category
		if err := json.Unmarshal(data, &cat); err != nil {
			return fmt.Errorf("category object: %w", err)
		}
		c.ID, c.Name = cat.ID, cat.Name
		return nil
	}

	if err := json.Unmarshal(data, &c.ID); err != nil {
		return fmt.Errorf("category id: %w", err)
	}
	return nil
}

type language struct {
	ID         int    `json:"id"`
	ShortName  string `json:"short_name"`
	FullName   string `json:"full_name"`
	FullNameEn string `json:"full_name_en"`
}

type translation struct {
	Language    int    `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type image struct {
	Image  string `json:"image"`
	IsMain bool   `json:"is_main"`
}

type exerciseInfo struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Category     categoryRef   `json:"category"`
	Translations []translation `json:"translations"`
	Images       []image       `json:"images"`
}

type mainImage struct {
	Image string `json:"image"`
}

func (c category) toCategory() exercises.Category {
	return exercises.Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

func (l language) toLanguage() exercises.Language {
	displayName := l.FullNameEn
	if displayName == "" {
		displayName = l.FullName
	}
	return exercises.Language{
		ID:          l.ID,
		ShortName:   l.ShortName,
		DisplayName: displayName,
	}
}

// toExercise maps the wire record; missing translations and images
// become empty slices instead of failing the record.
func (e exerciseInfo) toExercise() exercises.Exercise {
	ex := exercises.Exercise{
		ID:           e.ID,
		Name:         e.Name,
		CategoryID:   e.Category.ID,
		Translations: make([]exercises.Translation, 0, len(e.Translations)),
		Images:       make([]exercises.Image, 0, len(e.Images)),
	}

	for _, t := range e.Translations {
		ex.Translations = append(ex.Translations, exercises.Translation{
			LanguageID:  t.Language,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	for _, img := range e.Images {
		ex.Images = append(ex.Images, exercises.Image{
			URL:    img.Image,
			IsMain: img.IsMain,
		})
	}

	// newer api versions keep the name on translations only
	if ex.Name == "" {
		for _, t := range ex.Translations {
			if t.Name != "" {
				ex.Name = t.Name
				break
			}
		}
	}

	return ex
}
