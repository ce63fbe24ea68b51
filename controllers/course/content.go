package courseController

import (
	"mime/multipart"

	"eduportal/gateway"
	"eduportal/middleware"
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadContent adds a content item to a course the acting admin owns.
func UploadContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	page := "/course/details/" + c.Params("id")

	sess, err := requireOwner(c, courseID)
	if err != nil {
		return middleware.RedirectWithError(c, page, err.Error())
	}

	form, ok := c.Locals("validatedContent").(*gateway.ContentForm)
	if !ok {
		return middleware.RedirectWithError(c, page, "Invalid request body!")
	}
	file, ok := c.Locals("contentFile").(*multipart.FileHeader)
	if !ok {
		return middleware.RedirectWithError(c, page, "Provide title, type, and file (for new uploads)")
	}

	form.Course = courseID
	if err := gateway.Default.CreateContent(sess.AccessToken, *form, file); err != nil {
		return middleware.RedirectWithError(c, page, err.Error())
	}
	return middleware.RedirectWithMessage(c, page, "Content uploaded")
}

// UpdateContent edits a content item's metadata.
func UpdateContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	contentID := c.Locals("contentID").(uint)
	page := "/course/details/" + c.Params("id")

	sess, err := requireOwner(c, courseID)
	if err != nil {
		return middleware.RedirectWithError(c, page, err.Error())
	}

	form, ok := c.Locals("validatedContent").(*gateway.ContentForm)
	if !ok {
		return middleware.RedirectWithError(c, page, "Invalid request body!")
	}

	form.Course = courseID
	if err := gateway.Default.UpdateContent(sess.AccessToken, contentID, *form); err != nil {
		return middleware.RedirectWithError(c, page, err.Error())
	}
	return middleware.RedirectWithMessage(c, page, "Content updated")
}

// DeleteContent removes a content item.
func DeleteContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	contentID := c.Locals("contentID").(uint)
	page := "/course/details/" + c.Params("id")

	sess, err := requireOwner(c, courseID)
	if err != nil {
		return middleware.RedirectWithError(c, page, err.Error())
	}

	if err := gateway.Default.DeleteContent(sess.AccessToken, contentID); err != nil {
		return middleware.RedirectWithError(c, page, err.Error())
	}
	return middleware.RedirectWithMessage(c, page, "Content deleted")
}

type notAllowedError struct{}

func (notAllowedError) Error() string { return "Not allowed" }

// requireOwner re-checks ownership server-side before any content mutation;
// hiding the controls in the template is not enough.
func requireOwner(c *fiber.Ctx, courseID uint) (models.Session, error) {
	sess := middleware.CurrentSession(c)
	course, err := gateway.Default.Course(sess.AccessToken, courseID)
	if err != nil {
		return sess, err
	}
	if !sess.IsAdmin() || !course.OwnedBy(sess.User) {
		return sess, notAllowedError{}
	}
	return sess, nil
}
