package authController

import (
	"log"

	"eduportal/gateway"
	"eduportal/middleware"
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
)

// ShowLogin renders the login page, or forwards an already logged-in user to
// their dashboard.
func ShowLogin(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if sess.LoggedIn() {
		return c.Redirect(dashboardFor(sess.Role()), fiber.StatusSeeOther)
	}
	return middleware.Render(c, "login", fiber.Map{"Title": "Login"})
}

func Login(c *fiber.Ctx) error {
	creds, ok := c.Locals("validatedLogin").(*gateway.Credentials)
	if !ok {
		return middleware.RedirectWithError(c, "/auth", "Invalid request body!")
	}

	res, err := gateway.Default.Login(*creds)
	if err != nil {
		return middleware.RedirectWithError(c, "/auth", err.Error())
	}

	if err := middleware.SaveSession(c, res.Access, res.Refresh, res.User); err != nil {
		log.Printf("Error saving session: %v", err)
		return middleware.RedirectWithError(c, "/auth", "Something went wrong")
	}

	return c.Redirect(dashboardFor(res.User.Role), fiber.StatusSeeOther)
}

// ShowRegister renders the registration page.
func ShowRegister(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	if sess.LoggedIn() {
		return c.Redirect(dashboardFor(sess.Role()), fiber.StatusSeeOther)
	}
	return middleware.Render(c, "register", fiber.Map{"Title": "Register"})
}

func Register(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedRegister").(*gateway.RegisterForm)
	if !ok {
		return middleware.RedirectWithError(c, "/register", "Invalid request body!")
	}

	res, err := gateway.Default.Register(*form)
	if err != nil {
		return middleware.RedirectWithError(c, "/register", err.Error())
	}

	if err := middleware.SaveSession(c, res.Access, res.Refresh, res.User); err != nil {
		log.Printf("Error saving session: %v", err)
		return middleware.RedirectWithError(c, "/register", "Something went wrong")
	}

	return c.Redirect(dashboardFor(res.User.Role), fiber.StatusSeeOther)
}

// Logout clears the session and lands on home.
func Logout(c *fiber.Ctx) error {
	if err := middleware.ClearSession(c); err != nil {
		log.Printf("Error clearing session: %v", err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func dashboardFor(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleStudent:
		return "/student/dashboard"
	default:
		return "/"
	}
}
