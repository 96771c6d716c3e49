package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloudblitz/learnhub/pkg/enrollment"
)

// EnrollmentRepository implements enrollment.Repository backed by
// PostgreSQL (pgx). The unique index on (user_id, course_id) is the
// authoritative duplicate guard.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) (*EnrollmentRepository, error) {
	repo := &EnrollmentRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *EnrollmentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			course_id TEXT NOT NULL,
			course_title TEXT NOT NULL,
			status TEXT NOT NULL,
			enrolled_at TIMESTAMPTZ NOT NULL,
			UNIQUE (user_id, course_id)
		);
	`)
	return err
}

func (r *EnrollmentRepository) Create(ctx context.Context, e enrollment.Enrollment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO enrollments (id, user_id, course_id, course_title, status, enrolled_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.UserID, e.CourseID, e.CourseTitle, e.Status, e.EnrolledAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return enrollment.ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]enrollment.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, course_id, course_title, status, enrolled_at
		FROM enrollments WHERE user_id = $1 ORDER BY enrolled_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []enrollment.Enrollment
	for rows.Next() {
		var e enrollment.Enrollment
		var enrolledAt time.Time
		if err := rows.Scan(&e.ID, &e.UserID, &e.CourseID, &e.CourseTitle, &e.Status, &enrolledAt); err != nil {
			return nil, err
		}
		e.EnrolledAt = enrolledAt.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EnrollmentRepository) ExistsByUserAndCourse(ctx context.Context, userID, courseID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)
	`, userID, courseID).Scan(&exists)
	return exists, err
}
