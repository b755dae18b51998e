package selection

import (
	"github.com/2beens/workoutexplorer/internal/exercises"
)

const NoDescription = "No description available."

// Describe returns the description text of the exercise for the selection:
// the selected language's translation, or the first translation when no
// language is selected. The text is returned as is, markup included.
func Describe(exercise exercises.Exercise, filter exercises.Filter) string {
	var description string
	if filter.HasLanguage() {
		for _, t := range exercise.Translations {
			if t.LanguageID == filter.LanguageID {
				description = t.Description
				break
			}
		}
	} else if len(exercise.Translations) > 0 {
		description = exercise.Translations[0].Description
	}

	if description == "" {
		return NoDescription
	}
	return description
}
