package dashboardRoutes

import (
	adminController "eduportal/controllers/admin"
	studentController "eduportal/controllers/student"
	userController "eduportal/controllers/user"
	"eduportal/middleware"
	"eduportal/models"
	courseValidator "eduportal/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/student/dashboard",
		middleware.RequireRoles(models.RoleStudent),
		studentController.Dashboard)
	app.Post("/student/enroll/:id",
		middleware.RequireRoles(models.RoleStudent),
		courseValidator.CourseID(),
		studentController.Enroll)

	app.Get("/admin/dashboard",
		middleware.RequireRoles(models.RoleAdmin),
		adminController.Dashboard)
	app.Post("/admin/courses",
		middleware.RequireRoles(models.RoleAdmin),
		courseValidator.CreateCourse(),
		adminController.CreateCourse)
	app.Post("/admin/courses/:id/delete",
		middleware.RequireRoles(models.RoleAdmin),
		courseValidator.CourseID(),
		adminController.DeleteCourse)
	app.Post("/admin/enrollments/:id",
		middleware.RequireRoles(models.RoleAdmin),
		courseValidator.EnrollmentAction(),
		adminController.UpdateEnrollment)

	app.Get("/profile",
		middleware.RequireRoles(models.RoleStudent, models.RoleAdmin),
		userController.Profile)
	app.Get("/admin/profile",
		middleware.RequireRoles(models.RoleAdmin),
		userController.AdminProfile)
}
