package handler

import (
	"court_manager/constants"
	"court_manager/model"
	"court_manager/service"
	"court_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func (h *Handler) GetCourts(c *fiber.Ctx) error {
	courts, err := h.courts.List(c.UserContext())
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, courts)
}

func (h *Handler) GetCourtById(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	court, err := h.courts.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	if court == nil {
		return h.writeServiceError(c, service.ErrCourtMissing)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, court)
}

func (h *Handler) GetCourtBySlug(c *fiber.Ctx) error {
	court, err := h.courts.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return h.writeServiceError(c, err)
	}
	if court == nil {
		return h.writeServiceError(c, service.ErrCourtMissing)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, court)
}

func (h *Handler) CreateCourt(c *fiber.Ctx) error {
	input, ok := c.Locals("courtInput").(model.CourtInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("courtInput missing"))
	}

	var court model.Court
	if err := copier.Copy(&court, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	created, err := h.courts.Create(c.UserContext(), court)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func (h *Handler) EditCourt(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	input, ok := c.Locals("courtInput").(model.CourtInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("courtInput missing"))
	}

	var court model.Court
	if err := copier.Copy(&court, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updated, err := h.courts.Update(c.UserContext(), id, court)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func (h *Handler) DeleteCourt(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	court, err := h.courts.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	if court == nil {
		return h.writeServiceError(c, service.ErrCourtMissing)
	}
	if err := h.courts.Delete(c.UserContext(), id); err != nil {
		return h.writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
