// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kuliahku_backend/internals/features/users/auth/controller"
	authMiddleware "kuliahku_backend/internals/middlewares/auth"
	middlewares "kuliahku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db, nil)

	api := app.Group("/api/auth")

	// Public (dengan rate limiter masing-masing)
	api.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/refresh-token", ctl.RefreshToken)
	api.Post("/logout", ctl.Logout)

	// Butuh access token
	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ctl.Me)
	protected.Delete("/me", ctl.DeleteMe)
}
