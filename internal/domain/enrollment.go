package domain

import "time"

// Enrollment ties a member to a course. The (course_id, member_id) pair is
// the identity, enforced unique by the database.
type Enrollment struct {
	CourseID  string    `json:"course_id"`
	MemberID  string    `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}
