package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/users/controller"
	middlewares "yachaywasi_backend/internals/middlewares"
	authMw "yachaywasi_backend/internals/middlewares/auth"
)

// AuthRoutes: login/refresh/reset stay public, logout requires a token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ac.Login)
	auth.Post("/refresh", ac.RefreshToken)
	auth.Post("/register", authMw.AuthMiddleware(db), ac.Register)
	auth.Post("/logout", authMw.AuthMiddleware(db), ac.Logout)
}

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAuthController(db)
	uc := controller.NewUserController(db)

	user := app.Group("/api/user")
	user.Post("/send-reset-password", middlewares.ResetPasswordRateLimiter(), ac.SendResetPassword)
	user.Post("/reset-password", ac.ResetPassword)
	user.Get("/profile", authMw.AuthMiddleware(db), uc.GetProfile)
	user.Put("/profile", authMw.AuthMiddleware(db), uc.UpdateProfile)
}
