package courseRoutes

import (
	courseController "eduportal/controllers/course"
	"eduportal/middleware"
	"eduportal/models"
	courseValidator "eduportal/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	course := app.Group("/course")

	course.Get("/details/:id",
		middleware.RequireRoles(models.RoleStudent, models.RoleAdmin),
		courseValidator.CourseID(),
		courseController.Details)

	// Content management is owner-only; the controller re-checks ownership.
	course.Post("/details/:id/content",
		middleware.RequireRoles(models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.UploadContent(),
		courseController.UploadContent)

	course.Post("/details/:id/content/:contentId/update",
		middleware.RequireRoles(models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.ContentID(),
		courseValidator.UpdateContent(),
		courseController.UpdateContent)

	course.Post("/details/:id/content/:contentId/delete",
		middleware.RequireRoles(models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.ContentID(),
		courseController.DeleteContent)
}
