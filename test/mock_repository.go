package test

import (
	"context"

	"flashcard-rest/src/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of questionnaires.Repository. Expectations are
// matched on the arguments after the context.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(_ context.Context, id string) (models.Questionnaire, bool, error) {
	args := m.Called(id)
	return args.Get(0).(models.Questionnaire), args.Bool(1), args.Error(2)
}

func (m *MockRepository) FindAll(_ context.Context, sort models.SortParams) ([]models.Questionnaire, error) {
	args := m.Called(sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Questionnaire), args.Error(1)
}

func (m *MockRepository) Save(_ context.Context, q models.Questionnaire) (models.Questionnaire, error) {
	args := m.Called(q)
	return args.Get(0).(models.Questionnaire), args.Error(1)
}

func (m *MockRepository) DeleteByID(_ context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}
