package gateway

import (
	"fmt"
	"strconv"

	"eduportal/models"
)

// Enrollments lists enrollments, optionally scoped to one student
// (studentID 0 lists all the caller may see).
func (c *Client) Enrollments(token string, studentID uint) ([]models.Enrollment, error) {
	req := c.request(token)
	if studentID != 0 {
		req.SetQueryParam("student", strconv.FormatUint(uint64(studentID), 10))
	}
	resp, err := req.Get("/enrollments/")
	if err := wrapErr(resp, err, "Failed to fetch enrollments"); err != nil {
		return nil, err
	}
	return decodeList[models.Enrollment](resp.Body())
}

// Enroll files a pending enrollment request for the student.
func (c *Client) Enroll(token string, studentID, courseID uint) error {
	body := map[string]interface{}{
		"student": studentID,
		"course":  courseID,
		"status":  models.EnrollmentPending,
	}
	resp, err := c.request(token).SetBody(body).Post("/enrollments/")
	return wrapErr(resp, err, "Error enrolling in course")
}

// UpdateEnrollment moves a pending enrollment to approved or rejected.
func (c *Client) UpdateEnrollment(token string, id uint, status string) error {
	resp, err := c.request(token).
		SetBody(map[string]string{"status": status}).
		Patch(fmt.Sprintf("/enrollments/%d/", id))
	return wrapErr(resp, err, "Error updating enrollment")
}
