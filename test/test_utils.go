package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"flashcard-rest/src/controllers"
	"flashcard-rest/src/routes"
	"flashcard-rest/src/services/questionnaires"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewApp builds the full routing table over repo with a no-op logger.
func NewApp(repo questionnaires.Repository, rejectBlankTitle bool) *fiber.App {
	log := zap.NewNop()
	app := routes.NewApp(log, "*")
	routes.InitRoutes(app, routes.Handlers{
		Questionnaires: controllers.NewQuestionnaireController(repo, questionnaires.NewValidator(rejectBlankTitle), log),
		Pages:          controllers.NewQuestionnairePageController(repo, routes.WebBasePath, log),
	})
	return app
}

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Do sends a request with an optional raw JSON body through app.
func Do(t *testing.T, app *fiber.App, method, path string, body []byte) Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return Response{Status: resp.StatusCode, Header: resp.Header, Body: data}
}

// DoJSON marshals v as the request body.
func DoJSON(t *testing.T, app *fiber.App, method, path string, v any) Response {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return Do(t, app, method, path, body)
}

// Decode unmarshals the response body into a new T.
func Decode[T any](t *testing.T, r Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(r.Body, &v), "body: %s", r.Body)
	return v
}
