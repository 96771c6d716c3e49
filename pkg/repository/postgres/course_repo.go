package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloudblitz/learnhub/pkg/course"
)

// CourseRepository implements course.Repository backed by PostgreSQL (pgx).
type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) (*CourseRepository, error) {
	repo := &CourseRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *CourseRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			instructor TEXT NOT NULL,
			duration INT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *CourseRepository) Create(ctx context.Context, c course.Course) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO courses (id, title, description, instructor, duration, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID, c.Title, c.Description, c.Instructor, c.Duration, c.Price, c.CreatedAt)
	return err
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (course.Course, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, instructor, duration, price, created_at
		FROM courses WHERE id = $1
	`, id)
	return scanCourse(row)
}

func (r *CourseRepository) List(ctx context.Context) ([]course.Course, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, instructor, duration, price, created_at
		FROM courses ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []course.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepository) Update(ctx context.Context, c course.Course) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET title = $2, description = $3, instructor = $4, duration = $5, price = $6
		WHERE id = $1
	`, c.ID, c.Title, c.Description, c.Instructor, c.Duration, c.Price)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return course.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return course.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n)
	return n, err
}

func scanCourse(row pgx.Row) (course.Course, error) {
	var c course.Course
	var createdAt time.Time
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Duration, &c.Price, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, err
	}
	c.CreatedAt = createdAt.UTC()
	return c, nil
}
