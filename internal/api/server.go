package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/config"
)

func NewServer(cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: newErrorHandler(log),
		AppName:      "SynthesisTalk Backend",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	return app
}

// newErrorHandler translates the error taxonomy into HTTP status + a
// human-readable detail string. Anything outside the taxonomy is a 500 with
// a generic detail; the cause goes to the log, not the client.
func newErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			status := apperr.HTTPStatus(appErr.Code)
			if status >= fiber.StatusInternalServerError {
				log.Error("request failed",
					zap.String("path", c.Path()),
					zap.String("code", string(appErr.Code)),
					zap.Error(err))
			}
			return c.Status(status).JSON(fiber.Map{"detail": appErr.Detail})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
		}

		log.Error("unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal Server Error"})
	}
}

func StartServer(app *fiber.App, cfg *config.Config, log *zap.Logger) error {
	log.Info("server starting", zap.String("port", cfg.Port))
	return app.Listen(":" + cfg.Port)
}
