// Package views renders the HTML pages of the questionnaire browser.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"flashcard-rest/src/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const pageTitle = "Flashcards"

type pageData struct {
	PageTitle      string
	BasePath       string
	Questionnaires []models.Questionnaire
	Questionnaire  *models.Questionnaire
}

func render(name string, data pageData) ([]byte, error) {
	data.PageTitle = pageTitle
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Index renders the welcome page linking to the listing under basePath.
func Index(basePath string) ([]byte, error) {
	return render("index", pageData{BasePath: basePath})
}

// List renders one link per questionnaire.
func List(basePath string, list []models.Questionnaire) ([]byte, error) {
	return render("list", pageData{BasePath: basePath, Questionnaires: list})
}

// Detail renders a single questionnaire, or the fallback message when q is nil.
func Detail(basePath string, q *models.Questionnaire) ([]byte, error) {
	return render("detail", pageData{BasePath: basePath, Questionnaire: q})
}
