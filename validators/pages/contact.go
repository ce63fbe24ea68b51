package pageValidator

import (
	"strings"

	"eduportal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ContactForm is a validated contact-page submission.
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactForm)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.RedirectWithError(c, "/contact", "Invalid request body!")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Message = strings.TrimSpace(reqData.Message)

		if reqData.Name == "" {
			return middleware.RedirectWithError(c, "/contact", "Name is required!")
		}
		if reqData.Email == "" || validate.Var(reqData.Email, "email") != nil {
			return middleware.RedirectWithError(c, "/contact", "A valid email is required!")
		}
		if reqData.Subject == "" {
			return middleware.RedirectWithError(c, "/contact", "Subject is required!")
		}
		if reqData.Message == "" {
			return middleware.RedirectWithError(c, "/contact", "Message is required!")
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
