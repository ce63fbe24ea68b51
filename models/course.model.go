package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// InstructorRef normalizes the course instructor field, which the API returns
// either as a raw id or as an embedded user object.
type InstructorRef struct {
	ID uint
}

func (r *InstructorRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		r.ID = 0
		return nil
	}

	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var obj struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		r.ID = obj.ID
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			r.ID = uint(n)
		}
		return nil
	}

	// Unrecognized shape: treat as unowned rather than failing the whole fetch.
	r.ID = 0
	return nil
}

func (r InstructorRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

type Course struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Thumbnail   string        `json:"thumbnail"`
	Instructor  InstructorRef `json:"instructor"`
}

// OwnedBy reports whether the user is the course's instructor. Every
// course-scoped mutation must pass this check.
func (c Course) OwnedBy(u *User) bool {
	return u != nil && u.ID != 0 && c.Instructor.ID == u.ID
}

// OwnedCourses filters the catalog down to courses the user instructs.
func OwnedCourses(courses []Course, u *User) []Course {
	var owned []Course
	for _, c := range courses {
		if c.OwnedBy(u) {
			owned = append(owned, c)
		}
	}
	return owned
}
