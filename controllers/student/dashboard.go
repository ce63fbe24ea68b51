package studentController

import (
	"sync"

	"eduportal/gateway"
	"eduportal/middleware"
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard renders the student's approved courses and the full catalog with
// per-course enrollment state.
func Dashboard(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	var (
		courses        []models.Course
		coursesErr     error
		enrollments    []models.Enrollment
		enrollmentsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		courses, coursesErr = gateway.Default.Courses(sess.AccessToken)
	}()
	go func() {
		defer wg.Done()
		enrollments, enrollmentsErr = gateway.Default.Enrollments(sess.AccessToken, sess.User.ID)
	}()
	wg.Wait()

	if coursesErr != nil {
		return middleware.Render(c, "student_dashboard", fiber.Map{
			"Title": "Student Dashboard",
			"Error": coursesErr.Error(),
		})
	}
	if enrollmentsErr != nil {
		return middleware.Render(c, "student_dashboard", fiber.Map{
			"Title": "Student Dashboard",
			"Error": enrollmentsErr.Error(),
		})
	}

	dash := models.ProjectDashboard(courses, enrollments)
	return middleware.Render(c, "student_dashboard", fiber.Map{
		"Title": "Student Dashboard",
		"Dash":  dash,
	})
}

// Enroll files a pending enrollment request for the acting student.
func Enroll(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sess := middleware.CurrentSession(c)

	if err := gateway.Default.Enroll(sess.AccessToken, sess.User.ID, courseID); err != nil {
		return middleware.RedirectWithError(c, "/student/dashboard", err.Error())
	}
	return middleware.RedirectWithMessage(c, "/student/dashboard", "Enrollment request sent")
}
