package courseValidator

import (
	"strconv"
	"strings"

	"eduportal/gateway"
	"eduportal/middleware"
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// CourseID validates the :id route param and stores it as a uint.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.RedirectWithError(c, "/", "Course ID is required!")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.RedirectWithError(c, "/", "Invalid Course ID!")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `form:"title"`
			Description string `form:"description"`
			StartDate   string `form:"start_date"`
			EndDate     string `form:"end_date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Invalid request body!")
		}

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Title is required!")
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Title must be at least 3 characters long!")
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Description is required!")
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Description must be at least 5 characters long!")
		}

		start, err := now.Parse(strings.TrimSpace(reqData.StartDate))
		if err != nil {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Start date must be a valid date!")
		}
		end, err := now.Parse(strings.TrimSpace(reqData.EndDate))
		if err != nil {
			return middleware.RedirectWithError(c, "/admin/dashboard", "End date must be a valid date!")
		}
		if end.Before(start) {
			return middleware.RedirectWithError(c, "/admin/dashboard", "End date must be after start date!")
		}

		c.Locals("validatedCourse", &gateway.CourseForm{
			Title:       strings.TrimSpace(reqData.Title),
			Description: strings.TrimSpace(reqData.Description),
			StartDate:   start.Format("2006-01-02"),
			EndDate:     end.Format("2006-01-02"),
		})
		return c.Next()
	}
}

// EnrollmentAction validates an approve/reject request on an enrollment.
func EnrollmentAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Invalid enrollment ID!")
		}

		status := strings.TrimSpace(c.FormValue("status"))
		if status != models.EnrollmentApproved && status != models.EnrollmentRejected {
			return middleware.RedirectWithError(c, "/admin/dashboard", "Status must be approved or rejected!")
		}

		c.Locals("enrollmentID", uint(id))
		c.Locals("enrollmentStatus", status)
		return c.Next()
	}
}
