package questionnaires

import (
	"sort"

	"flashcard-rest/src/models"
)

// sortQuestionnaires orders list in place. Ties on title fall back to id so the
// result is stable across backends.
func sortQuestionnaires(list []models.Questionnaire, params models.SortParams) {
	less := func(a, b models.Questionnaire) bool {
		if params.SortBy == models.SortByTitle && a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	}
	sort.SliceStable(list, func(i, j int) bool {
		if params.IsDesc() {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}
