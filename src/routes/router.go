package routes

import (
	"flashcard-rest/src/controllers"
	"flashcard-rest/src/middleware"
	"flashcard-rest/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// WebBasePath is where the HTML browser is mounted.
const WebBasePath = "/web"

// Handlers groups the controllers the routing table dispatches to.
type Handlers struct {
	Questionnaires *controllers.QuestionnaireController
	Pages          *controllers.QuestionnairePageController
}

// NewApp สร้าง app instance พร้อม middleware ที่ทุก route ใช้ร่วมกัน
func NewApp(log *zap.Logger, allowedOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "flashcard-rest",
		ErrorHandler: utils.ErrorHandler(log),
		// params and bodies outlive the request once stored in a repository
		Immutable: true,
		// ids are matched and returned decoded, e.g. "hello%20world" -> "hello world"
		UnescapePath: true,
	})

	// logger outside recover so a recovered panic is still logged as a 500
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))
	return app
}

func InitRoutes(app *fiber.App, h Handlers) {
	questionnaireRoutes(app, h.Questionnaires)
	pageRoutes(app, h.Pages)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
