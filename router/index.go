package router

import (
	"court_manager/config"
	"court_manager/constants"
	"court_manager/handler"
	"court_manager/middleware"
	"court_manager/utils"
	"court_manager/validate"
	"errors"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func NewApp(cfg config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Origins(), ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
		MaxAge:       600,
	}))
	return app
}

// errorHandler renders errors that escape handlers in the usual envelope.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := constants.ERROR_INTERNAL_ERROR
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return utils.ErrorResponse(c, code, message, err)
	}
}

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	courts := v1.Group("/courts")
	courts.Get("/", h.GetCourts)
	courts.Get("/slug/:slug", h.GetCourtBySlug)
	courts.Get("/:id", validate.GetById("id"), h.GetCourtById)
	courts.Post("/", validate.CreateCourt(), h.CreateCourt)
	courts.Put("/:id", validate.GetById("id"), validate.CreateCourt(), h.EditCourt)
	courts.Delete("/:id", validate.GetById("id"), h.DeleteCourt)

	surfaceTypes := v1.Group("/surface-types")
	surfaceTypes.Get("/", h.GetSurfaceTypes)
	surfaceTypes.Get("/:id", validate.GetById("id"), h.GetSurfaceTypeById)
	surfaceTypes.Post("/", validate.CreateSurfaceType(), h.CreateSurfaceType)
	surfaceTypes.Delete("/:id", validate.GetById("id"), h.DeleteSurfaceType)

	reservations := v1.Group("/reservations")
	reservations.Get("/", h.GetReservations)
	reservations.Get("/customer", validate.ReservationsByPhone(), h.GetReservationsByPhone)
	reservations.Get("/court/:courtId/ws", h.UpgradeFeed, websocket.New(h.CourtFeed))
	reservations.Get("/court/:courtId", validate.GetById("courtId"), h.GetReservationsByCourt)
	reservations.Get("/:id", validate.GetById("id"), h.GetReservationById)
	reservations.Post("/", validate.CreateReservation(), h.CreateReservation)
	reservations.Put("/:id", validate.GetById("id"), validate.EditReservation(), h.EditReservation)
	reservations.Delete("/:id", validate.GetById("id"), h.DeleteReservation)
}
