// error_utils.go
package utils

import (
	"errors"

	"flashcard-rest/src/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// ErrorHandler is the app-wide fiber error handler: *fiber.Error keeps its code,
// anything else becomes a 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		} else {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return HandleError(c, status, message)
	}
}
