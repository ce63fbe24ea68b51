package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Render executes a view with the current session and any flash text from the
// query string attached. Page errors never escape past this layer.
func Render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Session"] = CurrentSession(c)
	if _, ok := data["Error"]; !ok {
		data["Error"] = c.Query("error")
	}
	if _, ok := data["Message"]; !ok {
		data["Message"] = c.Query("message")
	}
	return c.Render(view, data)
}

// RedirectWithError sends the user back with a page-local error string.
func RedirectWithError(c *fiber.Ctx, path, msg string) error {
	return redirectWith(c, path, "error", msg)
}

// RedirectWithMessage sends the user back with a success message.
func RedirectWithMessage(c *fiber.Ctx, path, msg string) error {
	return redirectWith(c, path, "message", msg)
}

func redirectWith(c *fiber.Ctx, path, key, msg string) error {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return c.Redirect(path+sep+key+"="+url.QueryEscape(msg), fiber.StatusSeeOther)
}
