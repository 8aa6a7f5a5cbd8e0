package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "yachaywasi_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth is applied per
// route group, not globally (login/refresh must stay reachable).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
