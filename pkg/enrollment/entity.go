package enrollment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Enrollment status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Enrollment records a user's membership in a course. CourseTitle is a
// denormalized copy resolved at enrollment time; it is never refreshed.
type Enrollment struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	Status      string    `json:"status"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}

var (
	// ErrAlreadyEnrolled is returned for a duplicate (user, course) pair.
	ErrAlreadyEnrolled = errors.New("user is already enrolled in this course")
	// ErrNotFound is returned when an enrollment does not exist.
	ErrNotFound = errors.New("enrollment not found")
)

// Repository abstracts enrollment persistence. Create must fail with
// ErrAlreadyEnrolled for a duplicate (user_id, course_id) pair; the
// storage unique index is the authoritative guard.
type Repository interface {
	Create(ctx context.Context, e Enrollment) error
	ListByUser(ctx context.Context, userID string) ([]Enrollment, error)
	ExistsByUserAndCourse(ctx context.Context, userID, courseID string) (bool, error)
}
