package pageController

import (
	"log"

	"eduportal/middleware"
	"eduportal/utils"
	pageValidator "eduportal/validators/pages"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Home(c *fiber.Ctx) error {
	return middleware.Render(c, "home", fiber.Map{"Title": "EduManager"})
}

func About(c *fiber.Ctx) error {
	return middleware.Render(c, "about", fiber.Map{"Title": "About Us"})
}

func Contact(c *fiber.Ctx) error {
	return middleware.Render(c, "contact", fiber.Map{"Title": "Contact Us"})
}

// ContactSubmit forwards the message to the support inbox with a short
// reference id the sender can quote later.
func ContactSubmit(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedContact").(*pageValidator.ContactForm)
	if !ok {
		return middleware.RedirectWithError(c, "/contact", "Invalid request body!")
	}

	refID := uuid.NewString()[:8]
	if err := utils.SendContactMail(form.Name, form.Email, form.Subject, form.Message, refID); err != nil {
		log.Printf("Error sending contact mail: %v", err)
		return middleware.RedirectWithError(c, "/contact", "Failed to send message. Please try again.")
	}

	return middleware.RedirectWithMessage(c, "/contact", "Message sent! Reference: "+refID)
}
