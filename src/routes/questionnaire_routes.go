package routes

import (
	"flashcard-rest/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// questionnaireRoutes กำหนดเส้นทางสำหรับ Questionnaire REST API
func questionnaireRoutes(app *fiber.App, qc *controllers.QuestionnaireController) {
	questionnaireRoutes := app.Group("/questionnaires")
	questionnaireRoutes.Get("/", qc.GetAllQuestionnaires)
	questionnaireRoutes.Post("/", qc.CreateQuestionnaire)
	questionnaireRoutes.Get("/:id", qc.GetQuestionnaireByID)
	questionnaireRoutes.Put("/:id", qc.UpdateQuestionnaire)
	questionnaireRoutes.Delete("/:id", qc.DeleteQuestionnaire)
}
