package questionnaires

import (
	"context"
	"testing"

	"flashcard-rest/src/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortParams(sortBy, order string) models.SortParams {
	p, err := models.SortParams{SortBy: sortBy, Order: order}.Normalize()
	if err != nil {
		panic(err)
	}
	return p
}

// runRepositoryContract exercises the behavior every backend must share. repo must
// start empty.
func runRepositoryContract(t *testing.T, repo Repository) {
	ctx := context.Background()

	a := models.Questionnaire{ID: "a", Title: "Zebra", Description: "first by id"}
	b := models.Questionnaire{ID: "b", Title: "Apple", Description: ""}
	c := models.Questionnaire{ID: "c", Title: "Mango", Description: "last by id"}

	t.Run("EmptyFindAll", func(t *testing.T) {
		list, err := repo.FindAll(ctx, models.DefaultSort())
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("FindByIDAbsent", func(t *testing.T) {
		_, found, err := repo.FindByID(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("SaveThenFind", func(t *testing.T) {
		for _, q := range []models.Questionnaire{c, a, b} {
			saved, err := repo.Save(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, q, saved)
		}

		got, found, err := repo.FindByID(ctx, "a")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, a, got)
	})

	t.Run("FindAllSorted", func(t *testing.T) {
		cases := []struct {
			sort models.SortParams
			want []models.Questionnaire
		}{
			{models.DefaultSort(), []models.Questionnaire{a, b, c}},
			{models.SortParams{SortBy: models.SortByID, Order: models.OrderDesc}, []models.Questionnaire{c, b, a}},
			{models.SortParams{SortBy: models.SortByTitle, Order: models.OrderAsc}, []models.Questionnaire{b, c, a}},
			{models.SortParams{SortBy: models.SortByTitle, Order: models.OrderDesc}, []models.Questionnaire{a, c, b}},
		}
		for _, tc := range cases {
			got, err := repo.FindAll(ctx, tc.sort)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FindAll(%+v) mismatch (-want +got):\n%s", tc.sort, diff)
			}
		}
	})

	t.Run("SaveReplaces", func(t *testing.T) {
		replaced := models.Questionnaire{ID: "a", Title: "Aardvark", Description: "replaced"}
		_, err := repo.Save(ctx, replaced)
		require.NoError(t, err)

		got, found, err := repo.FindByID(ctx, "a")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, replaced, got)

		list, err := repo.FindAll(ctx, models.DefaultSort())
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, "b"))
		require.NoError(t, repo.DeleteByID(ctx, "b"))

		_, found, err := repo.FindByID(ctx, "b")
		require.NoError(t, err)
		assert.False(t, found)

		list, err := repo.FindAll(ctx, models.DefaultSort())
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}
