package handler

import (
	"court_manager/constants"
	"court_manager/model"
	"court_manager/service"
	"court_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetReservations(c *fiber.Ctx) error {
	reservations, err := h.reservations.List(c.UserContext())
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

func (h *Handler) GetReservationById(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	reservation, err := h.reservations.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	if reservation == nil {
		return h.writeServiceError(c, service.ErrReservationNotFound)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func (h *Handler) GetReservationsByCourt(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	reservations, err := h.reservations.ListByCourt(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

func (h *Handler) GetReservationsByPhone(c *fiber.Ctx) error {
	query, ok := c.Locals("phoneQuery").(model.ReservationsByPhoneQuery)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("phoneQuery missing"))
	}
	reservations, err := h.reservations.ListByPhone(c.UserContext(), query.Phone, query.FutureOnly)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

// CreateReservation replies with the computed price only.
func (h *Handler) CreateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("reservationInput").(model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("reservationInput missing"))
	}

	created, err := h.reservations.Create(c.UserContext(), input.ToReservation())
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created.Price)
}

func (h *Handler) EditReservation(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	input, ok := c.Locals("editReservationInput").(model.EditReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("editReservationInput missing"))
	}

	updated, err := h.reservations.Update(c.UserContext(), id, input.ToReservation())
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func (h *Handler) DeleteReservation(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputId missing"))
	}
	reservation, err := h.reservations.Get(c.UserContext(), id)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	if reservation == nil {
		return h.writeServiceError(c, service.ErrReservationNotFound)
	}
	if err := h.reservations.Delete(c.UserContext(), id); err != nil {
		return h.writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
