package userController

import (
	"eduportal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Profile renders the stored user record for any authenticated user.
func Profile(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return middleware.Render(c, "profile", fiber.Map{
		"Title": "Profile",
		"User":  sess.User,
	})
}

// AdminProfile is the admin-flavored profile page.
func AdminProfile(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return middleware.Render(c, "admin_profile", fiber.Map{
		"Title": "Admin Profile",
		"User":  sess.User,
	})
}
