package models

// Enrollment statuses used by the remote API.
const (
	EnrollmentPending  = "pending"
	EnrollmentApproved = "approved"
	EnrollmentRejected = "rejected"
)

// Enrollment is a student's request to access a course.
type Enrollment struct {
	ID      uint   `json:"id"`
	Student uint   `json:"student"`
	Course  uint   `json:"course"`
	Status  string `json:"status"`
}

// CourseListing is a catalog entry annotated with the student's enrollment
// state. Status is empty exactly when CanEnroll is true.
type CourseListing struct {
	Course    Course
	Status    string
	CanEnroll bool
}

// StudentDashboard is the projection rendered on the student dashboard.
type StudentDashboard struct {
	Approved  []Course
	Available []CourseListing
}

// ProjectDashboard joins the student's enrollments with the course catalog.
// Approved enrollments referencing a missing course are skipped. Any existing
// enrollment record blocks re-enrolling, rejected ones included.
func ProjectDashboard(courses []Course, enrollments []Enrollment) StudentDashboard {
	courseByID := make(map[uint]Course, len(courses))
	for _, c := range courses {
		courseByID[c.ID] = c
	}

	enrollmentByCourse := make(map[uint]Enrollment, len(enrollments))
	for _, en := range enrollments {
		if _, ok := enrollmentByCourse[en.Course]; !ok {
			enrollmentByCourse[en.Course] = en
		}
	}

	var dash StudentDashboard
	for _, en := range enrollments {
		if en.Status != EnrollmentApproved {
			continue
		}
		course, ok := courseByID[en.Course]
		if !ok {
			continue
		}
		dash.Approved = append(dash.Approved, course)
	}

	for _, c := range courses {
		en, ok := enrollmentByCourse[c.ID]
		if !ok {
			dash.Available = append(dash.Available, CourseListing{Course: c, CanEnroll: true})
			continue
		}
		dash.Available = append(dash.Available, CourseListing{Course: c, Status: en.Status})
	}
	return dash
}

// PendingReview is one row of the admin dashboard's enrollment queue.
type PendingReview struct {
	Enrollment  Enrollment
	CourseTitle string
}

// PendingForCourses returns pending enrollments that target one of the given
// courses. The admin dashboard only queues requests for courses the acting
// admin owns.
func PendingForCourses(enrollments []Enrollment, courses []Course) []PendingReview {
	titles := make(map[uint]string, len(courses))
	for _, c := range courses {
		titles[c.ID] = c.Title
	}

	var pending []PendingReview
	for _, en := range enrollments {
		if en.Status != EnrollmentPending {
			continue
		}
		title, ok := titles[en.Course]
		if !ok {
			continue
		}
		pending = append(pending, PendingReview{Enrollment: en, CourseTitle: title})
	}
	return pending
}
