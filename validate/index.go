package validate

import (
	"court_manager/constants"
	"court_manager/utils"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reports fields by their json (or query) name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = fld.Tag.Get("query")
		}
		return name
	})
	return v
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.ParseUint(params, 10, 0)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", uint(valueKey))

		// Continue to next handler
		return c.Next()
	}
}

// bindBody parses and validates the JSON body; a non-nil map means the
// request was rejected.
func bindBody(c *fiber.Ctx, input any) map[string]string {
	if err := c.BodyParser(input); err != nil {
		return map[string]string{"body": err.Error()}
	}
	if err := validate.Struct(input); err != nil {
		return utils.FieldErrors(err)
	}
	return nil
}
