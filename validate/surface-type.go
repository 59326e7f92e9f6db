package validate

import (
	"court_manager/constants"
	"court_manager/model"
	"court_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateSurfaceType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSurfaceTypeInput
		if fields := bindBody(c, &input); fields != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, fields)
		}
		// validator tags do not reach into decimal.Decimal
		if input.PricePerMinute.IsNegative() {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, map[string]string{
				"pricePerMinute": "pricePerMinute must not be negative",
			})
		}
		// the column keeps two decimal places
		if !input.PricePerMinute.Equal(input.PricePerMinute.Round(2)) {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, map[string]string{
				"pricePerMinute": "pricePerMinute must have at most two decimal places",
			})
		}

		c.Locals("surfaceTypeInput", input)
		return c.Next()
	}
}
