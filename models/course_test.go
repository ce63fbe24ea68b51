package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructorRefUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		json string
		want uint
	}{
		{"raw id", `{"id": 1, "instructor": 42}`, 42},
		{"embedded object", `{"id": 1, "instructor": {"id": 42, "email": "a@b.c"}}`, 42},
		{"numeric string", `{"id": 1, "instructor": "42"}`, 42},
		{"null", `{"id": 1, "instructor": null}`, 0},
		{"missing", `{"id": 1}`, 0},
		{"unrecognized shape", `{"id": 1, "instructor": ["what"]}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var course Course
			require.NoError(t, json.Unmarshal([]byte(tc.json), &course))
			assert.Equal(t, tc.want, course.Instructor.ID)
		})
	}
}

func TestInstructorRefMarshal(t *testing.T) {
	out, err := json.Marshal(InstructorRef{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, "7", string(out))
}

func TestCourseOwnedBy(t *testing.T) {
	course := Course{ID: 1, Instructor: InstructorRef{ID: 5}}

	assert.True(t, course.OwnedBy(&User{ID: 5, Role: RoleAdmin}))
	assert.False(t, course.OwnedBy(&User{ID: 6, Role: RoleAdmin}))
	assert.False(t, course.OwnedBy(nil))

	// A zero user id never matches, even against an unowned course.
	unowned := Course{ID: 2}
	assert.False(t, unowned.OwnedBy(&User{ID: 0}))
}

func TestOwnedCourses(t *testing.T) {
	admin := &User{ID: 5, Role: RoleAdmin}
	courses := []Course{
		{ID: 1, Title: "Mine", Instructor: InstructorRef{ID: 5}},
		{ID: 2, Title: "Theirs", Instructor: InstructorRef{ID: 9}},
		{ID: 3, Title: "Also mine", Instructor: InstructorRef{ID: 5}},
	}

	owned := OwnedCourses(courses, admin)
	require.Len(t, owned, 2)
	assert.Equal(t, "Mine", owned[0].Title)
	assert.Equal(t, "Also mine", owned[1].Title)

	assert.Empty(t, OwnedCourses(courses, &User{ID: 99}))
}
