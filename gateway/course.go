package gateway

import (
	"fmt"
	"mime/multipart"
	"strconv"

	"eduportal/models"
)

func (c *Client) Courses(token string) ([]models.Course, error) {
	resp, err := c.request(token).Get("/courses/")
	if err := wrapErr(resp, err, "Failed to fetch courses"); err != nil {
		return nil, err
	}
	return decodeList[models.Course](resp.Body())
}

func (c *Client) Course(token string, id uint) (*models.Course, error) {
	var out models.Course
	resp, err := c.request(token).SetResult(&out).Get(fmt.Sprintf("/courses/%d/", id))
	if err := wrapErr(resp, err, "Failed to load course"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CourseForm is the create-course payload. The thumbnail travels alongside as
// a multipart file part.
type CourseForm struct {
	Title       string
	Description string
	StartDate   string
	EndDate     string
	Instructor  uint
}

func (c *Client) CreateCourse(token string, form CourseForm, thumbnail *multipart.FileHeader) (*models.Course, error) {
	req := c.request(token).SetMultipartFormData(map[string]string{
		"title":       form.Title,
		"description": form.Description,
		"start_date":  form.StartDate,
		"end_date":    form.EndDate,
		"instructor":  strconv.FormatUint(uint64(form.Instructor), 10),
	})
	if thumbnail != nil {
		src, err := thumbnail.Open()
		if err != nil {
			return nil, &APIError{Detail: "Error creating course"}
		}
		defer src.Close()
		req.SetFileReader("thumbnail", thumbnail.Filename, src)
	}

	var out models.Course
	resp, err := req.SetResult(&out).Post("/courses/")
	if err := wrapErr(resp, err, "Error creating course"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCourse(token string, id uint) error {
	resp, err := c.request(token).Delete(fmt.Sprintf("/courses/%d/", id))
	return wrapErr(resp, err, "Error deleting course")
}
