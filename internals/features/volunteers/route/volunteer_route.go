package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/volunteers/controller"
	authMw "yachaywasi_backend/internals/middlewares/auth"
)

// VolunteerRoutes: the postulation form POST stays public, everything
// the admin console touches requires a token.
func VolunteerRoutes(app *fiber.App, db *gorm.DB) {
	vc := controller.NewVolunteerController(db)

	volunteer := app.Group("/api/volunteer")
	volunteer.Post("/", vc.Create)

	volunteer.Get("/", authMw.AuthMiddleware(db), vc.GetVolunteers)
	volunteer.Get("/stats", authMw.AuthMiddleware(db), vc.GetStats)
	volunteer.Get("/profile-volunteer/:id", authMw.AuthMiddleware(db), vc.GetProfile)
	volunteer.Post("/:id/approve", authMw.AuthMiddleware(db), vc.Approve)
	volunteer.Post("/:id/reject", authMw.AuthMiddleware(db), vc.Reject)
	volunteer.Put("/:id", authMw.AuthMiddleware(db), vc.Update)
	volunteer.Delete("/:id", authMw.AuthMiddleware(db), vc.Delete)
}
