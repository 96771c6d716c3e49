package enrollment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnrollmentRepo struct {
	entries []Enrollment
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, e Enrollment) error {
	for _, existing := range f.entries {
		if existing.UserID == e.UserID && existing.CourseID == e.CourseID {
			return ErrAlreadyEnrolled
		}
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeEnrollmentRepo) ListByUser(_ context.Context, userID string) ([]Enrollment, error) {
	var out []Enrollment
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) ExistsByUserAndCourse(_ context.Context, userID, courseID string) (bool, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func TestEnrollResolvesTitleAndStatus(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeEnrollmentRepo{})
	ctx := context.Background()

	e, err := svc.Enroll(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, "AWS Fundamentals", e.CourseTitle)
	assert.Equal(t, StatusActive, e.Status)
	assert.Equal(t, "u1", e.UserID)
	assert.False(t, e.EnrolledAt.IsZero())
}

func TestEnrollDuplicateRejected(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeEnrollmentRepo{})
	ctx := context.Background()

	_, err := svc.Enroll(ctx, "u1", "1")
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, "u1", "1")
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Same course, different user is fine.
	_, err = svc.Enroll(ctx, "u2", "1")
	assert.NoError(t, err)
}

func TestEnrollUnknownCourseTitle(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeEnrollmentRepo{})

	e, err := svc.Enroll(context.Background(), "u1", "999")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Course", e.CourseTitle)
}

func TestListByUser(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeEnrollmentRepo{})
	ctx := context.Background()

	_, err := svc.Enroll(ctx, "u1", "1")
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, "u1", "2")
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, "u2", "3")
	require.NoError(t, err)

	list, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCourseTitleTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AWS Fundamentals", CourseTitle("1"))
	assert.Equal(t, "Docker & Kubernetes", CourseTitle("2"))
	assert.Equal(t, "Cloud Security Best Practices", CourseTitle("3"))
	assert.Equal(t, "Unknown Course", CourseTitle("42"))
}
