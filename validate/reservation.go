package validate

import (
	"court_manager/constants"
	"court_manager/model"
	"court_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if fields := bindBody(c, &input); fields != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, fields)
		}

		c.Locals("reservationInput", input)
		return c.Next()
	}
}

func EditReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditReservationInput
		if fields := bindBody(c, &input); fields != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, fields)
		}

		c.Locals("editReservationInput", input)
		return c.Next()
	}
}

func ReservationsByPhone() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query model.ReservationsByPhoneQuery
		if err := c.QueryParser(&query); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, map[string]string{"query": err.Error()})
		}
		if err := validate.Struct(&query); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, utils.FieldErrors(err))
		}

		c.Locals("phoneQuery", query)
		return c.Next()
	}
}
