package authRoutes

import (
	authController "eduportal/controllers/auth"
	authValidator "eduportal/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/auth", authController.ShowLogin)
	app.Post("/auth", authValidator.Login(), authController.Login)

	app.Get("/register", authController.ShowRegister)
	app.Post("/register", authValidator.Register(), authController.Register)

	app.Get("/logout", authController.Logout)
}
