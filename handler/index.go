package handler

import (
	"context"
	"court_manager/constants"
	"court_manager/notify"
	"court_manager/service"
	"court_manager/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	courts       *service.CourtService
	surfaceTypes *service.SurfaceTypeService
	reservations *service.ReservationService
	feed         notify.Subscriber
	db           *gorm.DB
	log          *zap.Logger
}

func New(
	courts *service.CourtService,
	surfaceTypes *service.SurfaceTypeService,
	reservations *service.ReservationService,
	feed notify.Subscriber,
	db *gorm.DB,
	log *zap.Logger,
) *Handler {
	if feed == nil {
		feed = notify.NopBroker{}
	}
	return &Handler{
		courts:       courts,
		surfaceTypes: surfaceTypes,
		reservations: reservations,
		feed:         feed,
		db:           db,
		log:          log,
	}
}

// writeServiceError maps domain errors to client errors; anything else is a 500.
func (h *Handler) writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrReference),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrReservationOverlap):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrCustomerConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CUSTOMER_CONFLICT, err)
	default:
		h.log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

func inputId(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("inputId").(uint)
	return id, ok
}

func (h *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unavailable", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"database": "up"})
}
