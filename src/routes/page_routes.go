package routes

import (
	"flashcard-rest/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// pageRoutes mounts the HTML browser. Any other path under /web falls back to the
// welcome page.
func pageRoutes(app *fiber.App, pc *controllers.QuestionnairePageController) {
	app.Get("/", pc.Index)

	pageRoutes := app.Group(WebBasePath)
	pageRoutes.Get("/", pc.Index)
	pageRoutes.Get("/questionnaires", pc.List)
	pageRoutes.Get("/questionnaires/:id", pc.Detail)
	pageRoutes.Get("/*", pc.Index)
}
