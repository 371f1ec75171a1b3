package questionnaires

import (
	"context"
	"sync"

	"flashcard-rest/src/models"
)

// MemoryRepository keeps questionnaires in a map guarded by a RWMutex. Each call is
// atomic on its own; a FindByID followed by Save is not.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Questionnaire
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Questionnaire)}
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (models.Questionnaire, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.items[id]
	return q, ok, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, sort models.SortParams) ([]models.Questionnaire, error) {
	r.mu.RLock()
	list := make([]models.Questionnaire, 0, len(r.items))
	for _, q := range r.items {
		list = append(list, q)
	}
	r.mu.RUnlock()

	sortQuestionnaires(list, sort)
	return list, nil
}

func (r *MemoryRepository) Save(_ context.Context, q models.Questionnaire) (models.Questionnaire, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[q.ID] = q
	return q, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
