package memory

import (
	"context"
	"sync"

	"github.com/cloudblitz/learnhub/pkg/enrollment"
)

// EnrollmentRepository implements enrollment.Repository with a
// mutex-guarded slice; Create enforces the (user, course) uniqueness the
// Postgres implementation gets from its unique index.
type EnrollmentRepository struct {
	mu      sync.RWMutex
	entries []enrollment.Enrollment
}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{}
}

func (r *EnrollmentRepository) Create(_ context.Context, e enrollment.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries {
		if existing.UserID == e.UserID && existing.CourseID == e.CourseID {
			return enrollment.ErrAlreadyEnrolled
		}
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *EnrollmentRepository) ListByUser(_ context.Context, userID string) ([]enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []enrollment.Enrollment
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EnrollmentRepository) ExistsByUserAndCourse(_ context.Context, userID, courseID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}
