package gateway

import (
	"fmt"
	"mime/multipart"
	"strconv"

	"eduportal/models"
)

func (c *Client) Contents(token string, courseID uint) ([]models.Content, error) {
	resp, err := c.request(token).
		SetQueryParam("course", strconv.FormatUint(uint64(courseID), 10)).
		Get("/contents/")
	if err := wrapErr(resp, err, "Failed to load contents"); err != nil {
		return nil, err
	}
	return decodeList[models.Content](resp.Body())
}

// ContentForm is the content create/update payload.
type ContentForm struct {
	Course      uint
	Title       string
	ContentType string
	Description string
	Order       int
	IsActive    bool
}

// CreateContent uploads a new content item with its file as multipart form data.
func (c *Client) CreateContent(token string, form ContentForm, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return &APIError{Detail: "Upload failed"}
	}
	defer src.Close()

	resp, rerr := c.request(token).
		SetMultipartFormData(map[string]string{
			"course":       strconv.FormatUint(uint64(form.Course), 10),
			"title":        form.Title,
			"content_type": form.ContentType,
			"description":  form.Description,
			"order":        strconv.Itoa(form.Order),
			"is_active":    strconv.FormatBool(form.IsActive),
		}).
		SetFileReader("content_file", file.Filename, src).
		Post("/contents/")
	return wrapErr(resp, rerr, "Upload failed")
}

// UpdateContent patches content metadata. The stored file is not replaced.
func (c *Client) UpdateContent(token string, id uint, form ContentForm) error {
	body := map[string]interface{}{
		"course":       form.Course,
		"title":        form.Title,
		"content_type": form.ContentType,
		"description":  form.Description,
		"order":        form.Order,
		"is_active":    form.IsActive,
	}
	resp, err := c.request(token).
		SetBody(body).
		Patch(fmt.Sprintf("/contents/%d/", id))
	return wrapErr(resp, err, "Update failed")
}

func (c *Client) DeleteContent(token string, id uint) error {
	resp, err := c.request(token).Delete(fmt.Sprintf("/contents/%d/", id))
	return wrapErr(resp, err, "Delete failed")
}
