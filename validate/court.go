package validate

import (
	"court_manager/constants"
	"court_manager/model"
	"court_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCourt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CourtInput
		if fields := bindBody(c, &input); fields != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, fields)
		}

		c.Locals("courtInput", input)
		return c.Next()
	}
}
