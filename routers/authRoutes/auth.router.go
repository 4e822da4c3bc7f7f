package authRoutes

import (
	authController "rately/controllers/auth"
	dashboardController "rately/controllers/dashboard"
	"rately/middleware"
	authValidator "rately/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authController.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authController.LoginHistoryList)
	authGroup.Patch("/profile", authValidator.UpdateProfile(), middleware.JWTMiddleware, authController.UpdateProfile)
	authGroup.Put("/change/password", authValidator.ChangePassword(), middleware.JWTMiddleware, authController.ChangePassword)

	// Role-resolved dashboard entry point
	app.Get("/dashboard", middleware.JWTMiddleware, dashboardController.Resolve)
}
