package handler

import (
	"court_manager/constants"
	"court_manager/model"
	"court_manager/service"
	"court_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetSurfaceTypes(c *fiber.Ctx) error {
	surfaceTypes, err := h.surfaceTypes.List(c.UserContext())
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, surfaceTypes)
}

func (h *Handler) GetSurfaceTypeById(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	surfaceType, err := h.surfaceTypes.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	if surfaceType == nil {
		return h.writeServiceError(c, service.ErrSurfaceTypeMissing)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, surfaceType)
}

func (h *Handler) CreateSurfaceType(c *fiber.Ctx) error {
	input, ok := c.Locals("surfaceTypeInput").(model.CreateSurfaceTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("surfaceTypeInput missing"))
	}

	created, err := h.surfaceTypes.Create(c.UserContext(), model.SurfaceType{
		Name:           input.Name,
		PricePerMinute: *input.PricePerMinute,
	})
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func (h *Handler) DeleteSurfaceType(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	surfaceType, err := h.surfaceTypes.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	if surfaceType == nil {
		return h.writeServiceError(c, service.ErrSurfaceTypeMissing)
	}
	if err := h.surfaceTypes.Delete(c.UserContext(), id); err != nil {
		return h.writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
