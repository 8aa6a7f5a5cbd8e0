package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/areas/controller"
	authMw "yachaywasi_backend/internals/middlewares/auth"
)

func AreaRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAreaController(db)

	app.Get("/api/areas", authMw.AuthMiddleware(db), ac.GetAreas)
}
