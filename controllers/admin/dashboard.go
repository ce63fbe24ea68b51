package adminController

import (
	"sync"

	"eduportal/gateway"
	"eduportal/middleware"
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard renders the admin's own courses, the create-course form and the
// pending enrollment queue for courses they instruct.
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
		enrollments, enrollmentsErr = gateway.Default.Enrollments(sess.AccessToken, 0)
	}()
	wg.Wait()

	if coursesErr != nil {
		return middleware.Render(c, "admin_dashboard", fiber.Map{
			"Title": "Admin Dashboard",
			"Error": coursesErr.Error(),
		})
	}

	errMsg := c.Query("error")
	if enrollmentsErr != nil {
		errMsg = enrollmentsErr.Error()
	}

	owned := models.OwnedCourses(courses, sess.User)
	pending := models.PendingForCourses(enrollments, owned)

	return middleware.Render(c, "admin_dashboard", fiber.Map{
		"Title":   "Admin Dashboard",
		"Courses": owned,
		"Pending": pending,
		"Error":   errMsg,
	})
}

// CreateCourse creates a course owned by the acting admin.
func CreateCourse(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	form, ok := c.Locals("validatedCourse").(*gateway.CourseForm)
	if !ok {
		return middleware.RedirectWithError(c, "/admin/dashboard", "Invalid request body!")
	}
	form.Instructor = sess.User.ID

	// Thumbnail is optional; a missing file part is not an error.
	thumbnail, _ := c.FormFile("thumbnail")

	if _, err := gateway.Default.CreateCourse(sess.AccessToken, *form, thumbnail); err != nil {
		return middleware.RedirectWithError(c, "/admin/dashboard", err.Error())
	}
	return middleware.RedirectWithMessage(c, "/admin/dashboard", "Course created successfully")
}

// DeleteCourse removes a course the acting admin owns.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sess := middleware.CurrentSession(c)

	course, err := gateway.Default.Course(sess.AccessToken, courseID)
	if err != nil {
		return middleware.RedirectWithError(c, "/admin/dashboard", err.Error())
	}
	if !course.OwnedBy(sess.User) {
		return middleware.RedirectWithError(c, "/admin/dashboard", "Not allowed")
	}

	if err := gateway.Default.DeleteCourse(sess.AccessToken, courseID); err != nil {
		return middleware.RedirectWithError(c, "/admin/dashboard", err.Error())
	}
	return middleware.RedirectWithMessage(c, "/admin/dashboard", "Course deleted successfully")
}

// UpdateEnrollment approves or rejects a pending enrollment on a course the
// acting admin owns.
func UpdateEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)
	status := c.Locals("enrollmentStatus").(string)
	sess := middleware.CurrentSession(c)

	enrollments, err := gateway.Default.Enrollments(sess.AccessToken, 0)
	if err != nil {
		return middleware.RedirectWithError(c, "/admin/dashboard", err.Error())
	}

	var target *models.Enrollment
	for i := range enrollments {
		if enrollments[i].ID == enrollmentID {
			target = &enrollments[i]
			break
		}
	}
	if target == nil {
		return middleware.RedirectWithError(c, "/admin/dashboard", "Enrollment not found!")
	}

	course, err := gateway.Default.Course(sess.AccessToken, target.Course)
	if err != nil {
		return middleware.RedirectWithError(c, "/admin/dashboard", err.Error())
	}
	if !course.OwnedBy(sess.User) {
		return middleware.RedirectWithError(c, "/admin/dashboard", "Not allowed")
	}

	if err := gateway.Default.UpdateEnrollment(sess.AccessToken, enrollmentID, status); err != nil {
		return middleware.RedirectWithError(c, "/admin/dashboard", err.Error())
	}
	return middleware.RedirectWithMessage(c, "/admin/dashboard", "Enrollment "+status)
}
