package courseController

import (
	"sync"

	"eduportal/config"
	"eduportal/gateway"
	"eduportal/middleware"
	"eduportal/models"
	"eduportal/utils"

	"github.com/gofiber/fiber/v2"
)

// contentItem pairs a content record with its resolved preview for the template.
type contentItem struct {
	Content models.Content
	Preview *models.ContentPreview
}

// Details renders the course page. The course and its contents are fetched
// concurrently and each failure is handled on its own: a missing course is
// terminal for the page, a failed content list renders as an error message
// over an empty list.
func Details(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sess := middleware.CurrentSession(c)

	var (
		course      *models.Course
		courseErr   error
		contents    []models.Content
		contentsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		course, courseErr = gateway.Default.Course(sess.AccessToken, courseID)
	}()
	go func() {
		defer wg.Done()
		contents, contentsErr = gateway.Default.Contents(sess.AccessToken, courseID)
	}()
	wg.Wait()

	if courseErr != nil {
		return middleware.Render(c, "course_details", fiber.Map{
			"Title": "Course",
			"Error": "Failed to load course",
		})
	}

	errMsg := c.Query("error")
	if contentsErr != nil {
		errMsg = contentsErr.Error()
	}

	items := make([]contentItem, 0, len(contents))
	for _, content := range contents {
		items = append(items, contentItem{
			Content: content,
			Preview: content.Preview(config.AppConfig.AssetBase),
		})
	}

	isOwner := sess.IsAdmin() && course.OwnedBy(sess.User)

	return middleware.Render(c, "course_details", fiber.Map{
		"Title":     course.Title,
		"Course":    course,
		"Thumbnail": utils.ResolveAssetURL(course.Thumbnail, config.AppConfig.AssetBase),
		"Items":     items,
		"IsOwner":   isOwner,
		"Error":     errMsg,
	})
}
