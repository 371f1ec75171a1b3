package questionnaires

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"flashcard-rest/src/models"
)

const (
	titleRule      = "required"
	titleRuleBlank = "required,notblank"
)

// Validator checks the business rules of a questionnaire before it is created.
type Validator struct {
	validate  *validator.Validate
	titleRule string
}

// NewValidator builds a Validator. With rejectBlank set, titles made only of
// whitespace are rejected as well as the empty string.
func NewValidator(rejectBlank bool) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	rule := titleRule
	if rejectBlank {
		rule = titleRuleBlank
	}
	return &Validator{validate: v, titleRule: rule}
}

// Validate returns an error wrapping ErrInvalidTitle when the title is rejected.
func (v *Validator) Validate(q models.Questionnaire) error {
	if err := v.validate.Var(q.Title, v.titleRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTitle, err)
	}
	return nil
}
