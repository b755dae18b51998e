package exercises

// Category is a muscle-group / equipment grouping from the remote service.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Language is a language the remote service offers exercise text in.
type Language struct {
	ID          int    `json:"id"`
	ShortName   string `json:"shortName"`
	DisplayName string `json:"displayName"`
}

// Translation is the language specific text of an exercise.
// Description may contain HTML markup.
type Translation struct {
	LanguageID  int    `json:"languageId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Image is one picture attached to an exercise.
type Image struct {
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

// Exercise is a single exercise record as returned by the remote service.
type Exercise struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	CategoryID   int           `json:"categoryId"`
	Translations []Translation `json:"translations"`
	Images       []Image       `json:"images"`
}

// HasTranslation reports whether the exercise carries text in the given language.
func (e Exercise) HasTranslation(languageID int) bool {
	for _, t := range e.Translations {
		if t.LanguageID == languageID {
			return true
		}
	}
	return false
}

// EnrichedExercise is an Exercise with exactly one resolved display image.
type EnrichedExercise struct {
	Exercise
	DisplayImage string `json:"displayImage"`
}

// Filter is the user selection applied to the exercise query.
// Zero values mean "no filter" (remote ids start at 1).
type Filter struct {
	CategoryID int `json:"categoryId"`
	LanguageID int `json:"languageId"`
}

func (f Filter) HasCategory() bool {
	return f.CategoryID > 0
}

func (f Filter) HasLanguage() bool {
	return f.LanguageID > 0
}
