package enrollment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase describes enrollment operations for an authenticated user.
type UseCase interface {
	Enroll(ctx context.Context, userID, courseID string) (Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]Enrollment, error)
}

type service struct {
	repo Repository
}

// NewService returns the default ledger implementation.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Enroll(ctx context.Context, userID, courseID string) (Enrollment, error) {
	courseID = strings.TrimSpace(courseID)

	// Fast-path check; the unique index in the store closes the race.
	exists, err := s.repo.ExistsByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return Enrollment{}, err
	}
	if exists {
		return Enrollment{}, ErrAlreadyEnrolled
	}

	e := Enrollment{
		ID:          uuid.New(),
		UserID:      userID,
		CourseID:    courseID,
		CourseTitle: CourseTitle(courseID),
		Status:      StatusActive,
		EnrolledAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Enrollment{}, err
	}
	return e, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Enrollment, error) {
	return s.repo.ListByUser(ctx, userID)
}
