package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"flashcard-rest/src/models"
	"flashcard-rest/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestQuestionnairePages(t *testing.T) {
	t.Run("WelcomePage", func(t *testing.T) {
		app := test.NewApp(new(test.MockRepository), false)

		for _, path := range []string{"/", "/web", "/web/anything/else"} {
			resp := test.Do(t, app, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, resp.Status, path)
			assert.Equal(t, fiber.MIMETextHTMLCharsetUTF8, resp.Header.Get(fiber.HeaderContentType), path)
			assert.Contains(t, string(resp.Body), "Welcome", path)
		}
	})

	t.Run("Listing", func(t *testing.T) {
		repo := new(test.MockRepository)
		repo.On("FindAll", models.DefaultSort()).Return([]models.Questionnaire{
			questionnaire("1", "MyTitle1", ""),
			questionnaire("2", "MyTitle2", ""),
		}, nil).Once()

		resp := test.Do(t, test.NewApp(repo, false), http.MethodGet, "/web/questionnaires", nil)

		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Contains(t, string(resp.Body), `<a href="/web/questionnaires/1">MyTitle1</a>`)
		assert.Contains(t, string(resp.Body), `<a href="/web/questionnaires/2">MyTitle2</a>`)
		repo.AssertExpectations(t)
	})

	t.Run("Detail", func(t *testing.T) {
		repo := new(test.MockRepository)
		repo.On("FindByID", "1").Return(questionnaire("1", "MyTitle", "MyDescription"), true, nil).Once()

		resp := test.Do(t, test.NewApp(repo, false), http.MethodGet, "/web/questionnaires/1", nil)

		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Contains(t, string(resp.Body), "<h3>MyTitle</h3>")
		assert.Contains(t, string(resp.Body), "<p>MyDescription</p>")
	})

	t.Run("DetailFallback", func(t *testing.T) {
		repo := new(test.MockRepository)
		repo.On("FindByID", "42").Return(models.Questionnaire{}, false, nil).Once()

		resp := test.Do(t, test.NewApp(repo, false), http.MethodGet, "/web/questionnaires/42", nil)

		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Contains(t, string(resp.Body), "no questionnaire found")
	})

	t.Run("StorageFailure", func(t *testing.T) {
		repo := new(test.MockRepository)
		repo.On("FindAll", models.DefaultSort()).Return(nil, errors.New("down")).Once()

		resp := test.Do(t, test.NewApp(repo, false), http.MethodGet, "/web/questionnaires", nil)

		assert.Equal(t, http.StatusInternalServerError, resp.Status)
	})
}
