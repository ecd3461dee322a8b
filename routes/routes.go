package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zsmartex/stockfolio/config"
	"github.com/zsmartex/stockfolio/controllers"
	"github.com/zsmartex/stockfolio/controllers/helpers"
	"github.com/zsmartex/stockfolio/routes/middlewares"
)

func SetupRouter(ctrl *controllers.Controller) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	app.Use(middlewares.RequestID)
	app.Use(middlewares.Logger(ErrorHandler))
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/", ctrl.GetIndex)
	app.Get("/stocks", ctrl.GetStocks)
	app.Get("/stocks/:ticker", ctrl.GetStock)

	app.Post("/trades/new", ctrl.CreateTrade)

	return app
}

// ErrorHandler answers every unhandled error with {"error": message}.
// Fiber errors keep their status code, anything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= 500 {
		config.Logger.WithField("request_id", middlewares.GetRequestID(c)).Errorf("Unexpected error: %v", err)
	}

	return c.Status(code).JSON(helpers.Error{Error: err.Error()})
}
