package questionnaires

import (
	"context"
	"errors"
	"time"

	"flashcard-rest/src/models"
)

// DefaultTimeout bounds a single repository call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// ErrInvalidTitle is returned by the validator when a questionnaire title is rejected.
var ErrInvalidTitle = errors.New("title must not be empty")

// Repository is the storage abstraction consumed by the controllers.
//
// FindByID reports found=false with a nil error when the id is absent. Save inserts
// or replaces by id and returns the persisted value. DeleteByID of an absent id is
// not an error.
type Repository interface {
	FindByID(ctx context.Context, id string) (models.Questionnaire, bool, error)
	FindAll(ctx context.Context, sort models.SortParams) ([]models.Questionnaire, error)
	Save(ctx context.Context, q models.Questionnaire) (models.Questionnaire, error)
	DeleteByID(ctx context.Context, id string) error
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
