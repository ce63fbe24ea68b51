package courseValidator

import (
	"strconv"
	"strings"

	"eduportal/gateway"
	"eduportal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ContentID validates the :contentId route param.
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("contentId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.RedirectWithError(c, coursePath(c), "Invalid content ID!")
		}

		c.Locals("contentID", uint(id))
		return c.Next()
	}
}

// UploadContent validates a new content upload: metadata plus the file part.
func UploadContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := parseContentForm(c)
		if err != nil {
			return middleware.RedirectWithError(c, coursePath(c), err.Error())
		}

		file, err := c.FormFile("content_file")
		if err != nil {
			return middleware.RedirectWithError(c, coursePath(c), "Provide title, type, and file (for new uploads)")
		}

		c.Locals("validatedContent", form)
		c.Locals("contentFile", file)
		return c.Next()
	}
}

// UpdateContent validates a metadata edit. The stored file stays as is.
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := parseContentForm(c)
		if err != nil {
			return middleware.RedirectWithError(c, coursePath(c), err.Error())
		}

		c.Locals("validatedContent", form)
		return c.Next()
	}
}

type contentFormError string

func (e contentFormError) Error() string { return string(e) }

func parseContentForm(c *fiber.Ctx) (*gateway.ContentForm, error) {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return nil, contentFormError("Title is required!")
	}

	contentType := strings.TrimSpace(c.FormValue("content_type"))
	if validate.Var(contentType, "required,oneof=video image document other") != nil {
		return nil, contentFormError("Content type must be video, image, document or other!")
	}

	order := 0
	if orderStr := strings.TrimSpace(c.FormValue("order")); orderStr != "" {
		n, err := strconv.Atoi(orderStr)
		if err != nil || n < 0 {
			return nil, contentFormError("Order must be a non-negative number!")
		}
		order = n
	}

	return &gateway.ContentForm{
		Title:       title,
		ContentType: contentType,
		Description: strings.TrimSpace(c.FormValue("description")),
		Order:       order,
		IsActive:    true,
	}, nil
}

func coursePath(c *fiber.Ctx) string {
	return "/course/details/" + c.Params("id")
}
