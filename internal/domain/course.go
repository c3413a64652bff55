package domain

import (
	"math"
	"time"
)

type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCourseInput struct {
	Name     string
	Capacity int
}

// RosterEntry is one enrolled member, joined to the members table when the
// row exists there.
type RosterEntry struct {
	MemberID   string    `json:"member_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// CourseFill is the roster plus occupancy numbers returned by enroll,
// unenroll and the fill endpoint.
type CourseFill struct {
	CourseID   string        `json:"course_id"`
	CourseName string        `json:"course_name"`
	Capacity   int           `json:"capacity"`
	Enrolled   int           `json:"enrolled"`
	FillRate   int           `json:"fill_rate"`
	Roster     []RosterEntry `json:"roster"`
}

// FillRate is the occupancy percentage, rounded. A course with zero capacity
// reports 0 rather than dividing by zero.
func FillRate(enrolled, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(enrolled) / float64(capacity)))
}
