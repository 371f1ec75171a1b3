package controllers

import (
	"errors"

	"flashcard-rest/src/models"
	"flashcard-rest/src/services/questionnaires"
	"flashcard-rest/src/utils"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuestionnaireController serves the JSON REST API over a Repository.
//
// Update and delete look the id up before mutating. The two calls are not atomic, so
// a concurrent delete can race with them.
type QuestionnaireController struct {
	repo      questionnaires.Repository
	validator *questionnaires.Validator
	log       *zap.Logger
}

func NewQuestionnaireController(repo questionnaires.Repository, validator *questionnaires.Validator, log *zap.Logger) *QuestionnaireController {
	return &QuestionnaireController{repo: repo, validator: validator, log: log}
}

// CreateQuestionnaire godoc
// @Summary      Create a questionnaire
// @Description  Create a questionnaire. An id is generated when the body has none.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        body body models.Questionnaire true "Questionnaire object"
// @Success      201  {object}  models.Questionnaire
// @Failure      412  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires [post]
func (qc *QuestionnaireController) CreateQuestionnaire(c *fiber.Ctx) error {
	var request models.Questionnaire
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Invalid input: "+err.Error())
	}

	if err := qc.validator.Validate(request); err != nil {
		if errors.Is(err, questionnaires.ErrInvalidTitle) {
			return utils.HandleError(c, fiber.StatusPreconditionFailed, questionnaires.ErrInvalidTitle.Error())
		}
		return err
	}

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	created, err := qc.repo.Save(c.UserContext(), request)
	if err != nil {
		return qc.storageError(c, "Error creating questionnaire", err)
	}

	qc.log.Info("questionnaire created", zap.String("id", created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetAllQuestionnaires godoc
// @Summary      List questionnaires
// @Description  List every questionnaire, ascending by id unless sortBy/order say otherwise
// @Tags         questionnaires
// @Produce      json
// @Param        sortBy  query  string  false  "Sort field"      Enums(id, title)
// @Param        order   query  string  false  "Sort direction"  Enums(asc, desc)
// @Success      200  {array}   models.Questionnaire
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires [get]
func (qc *QuestionnaireController) GetAllQuestionnaires(c *fiber.Ctx) error {
	var params models.SortParams
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	sort, err := params.Normalize()
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	list, err := qc.repo.FindAll(c.UserContext(), sort)
	if err != nil {
		return qc.storageError(c, "Error fetching questionnaires", err)
	}
	if list == nil {
		list = []models.Questionnaire{}
	}
	return c.JSON(list)
}

// GetQuestionnaireByID godoc
// @Summary      Get a questionnaire by ID
// @Tags         questionnaires
// @Produce      json
// @Param        id   path  string  true  "Questionnaire ID"
// @Success      200  {object}  models.Questionnaire
// @Failure      404
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [get]
func (qc *QuestionnaireController) GetQuestionnaireByID(c *fiber.Ctx) error {
	q, found, err := qc.repo.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return qc.storageError(c, "Error fetching questionnaire", err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return c.JSON(q)
}

// UpdateQuestionnaire godoc
// @Summary      Replace a questionnaire
// @Description  Replace the questionnaire stored under id. The path id wins over the body id.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        id     path  string                true  "Questionnaire ID"
// @Param        body   body  models.Questionnaire  true  "Questionnaire object"
// @Success      200  {object}  models.Questionnaire
// @Failure      404
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [put]
func (qc *QuestionnaireController) UpdateQuestionnaire(c *fiber.Ctx) error {
	id := fiberutils.CopyString(c.Params("id"))
	_, found, err := qc.repo.FindByID(c.UserContext(), id)
	if err != nil {
		return qc.storageError(c, "Error fetching questionnaire", err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	var request models.Questionnaire
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Invalid input: "+err.Error())
	}

	request.ID = id
	updated, err := qc.repo.Save(c.UserContext(), request)
	if err != nil {
		return qc.storageError(c, "Error updating questionnaire", err)
	}

	qc.log.Info("questionnaire updated", zap.String("id", id))
	return c.JSON(updated)
}

// DeleteQuestionnaire godoc
// @Summary      Delete a questionnaire
// @Tags         questionnaires
// @Param        id   path  string  true  "Questionnaire ID"
// @Success      204
// @Failure      404
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [delete]
func (qc *QuestionnaireController) DeleteQuestionnaire(c *fiber.Ctx) error {
	id := c.Params("id")
	_, found, err := qc.repo.FindByID(c.UserContext(), id)
	if err != nil {
		return qc.storageError(c, "Error fetching questionnaire", err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	if err := qc.repo.DeleteByID(c.UserContext(), id); err != nil {
		return qc.storageError(c, "Error deleting questionnaire", err)
	}

	qc.log.Info("questionnaire deleted", zap.String("id", id))
	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (qc *QuestionnaireController) storageError(c *fiber.Ctx, message string, err error) error {
	qc.log.Error(message, zap.String("path", c.Path()), zap.Error(err))
	return utils.HandleError(c, fiber.StatusInternalServerError, message)
}
