package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	areaRoute "yachaywasi_backend/internals/features/areas/route"
	beneficiaryRoute "yachaywasi_backend/internals/features/beneficiaries/route"
	userRoute "yachaywasi_backend/internals/features/users/route"
	volunteerRoute "yachaywasi_backend/internals/features/volunteers/route"
)

var startedAt = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	userRoute.AuthRoutes(app, db)
	userRoute.UserRoutes(app, db)
	areaRoute.AreaRoutes(app, db)
	volunteerRoute.VolunteerRoutes(app, db)
	beneficiaryRoute.BeneficiaryRoutes(app, db)
}

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "yachaywasi_backend",
			"status":  "running",
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
