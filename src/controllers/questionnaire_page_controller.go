package controllers

import (
	"flashcard-rest/src/models"
	"flashcard-rest/src/services/questionnaires"
	"flashcard-rest/src/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionnairePageController renders the HTML browser over the same Repository as
// the REST API. Links are built under basePath.
type QuestionnairePageController struct {
	repo     questionnaires.Repository
	basePath string
	log      *zap.Logger
}

func NewQuestionnairePageController(repo questionnaires.Repository, basePath string, log *zap.Logger) *QuestionnairePageController {
	return &QuestionnairePageController{repo: repo, basePath: basePath, log: log}
}

// Index แสดงหน้า Welcome
func (pc *QuestionnairePageController) Index(c *fiber.Ctx) error {
	page, err := views.Index(pc.basePath)
	return pc.send(c, fiber.StatusOK, page, err)
}

// List แสดงรายการ questionnaires ทั้งหมด
func (pc *QuestionnairePageController) List(c *fiber.Ctx) error {
	list, err := pc.repo.FindAll(c.UserContext(), models.DefaultSort())
	if err != nil {
		return pc.send(c, fiber.StatusInternalServerError, nil, err)
	}
	page, err := views.List(pc.basePath, list)
	return pc.send(c, fiber.StatusOK, page, err)
}

// Detail แสดง questionnaire ตาม ID, or the fallback page with 404 when it is absent.
func (pc *QuestionnairePageController) Detail(c *fiber.Ctx) error {
	q, found, err := pc.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return pc.send(c, fiber.StatusInternalServerError, nil, err)
	}
	if !found {
		page, err := views.Detail(pc.basePath, nil)
		return pc.send(c, fiber.StatusNotFound, page, err)
	}
	page, err := views.Detail(pc.basePath, &q)
	return pc.send(c, fiber.StatusOK, page, err)
}

func (pc *QuestionnairePageController) send(c *fiber.Ctx, status int, page []byte, err error) error {
	if err != nil {
		pc.log.Error("render page", zap.String("path", c.Path()), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error rendering page")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(page)
}
