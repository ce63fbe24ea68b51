package pageRoutes

import (
	pageController "eduportal/controllers/pages"
	pageValidator "eduportal/validators/pages"

	"github.com/gofiber/fiber/v2"
)

func SetupPageRoutes(app *fiber.App) {
	app.Get("/", pageController.Home)
	app.Get("/about", pageController.About)
	app.Get("/contact", pageController.Contact)
	app.Post("/contact", pageValidator.Contact(), pageController.ContactSubmit)
}
