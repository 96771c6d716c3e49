package course

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Course is a catalog entry.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ErrNotFound is returned when a course id does not exist.
var ErrNotFound = errors.New("course not found")

// Repository abstracts course persistence.
type Repository interface {
	Create(ctx context.Context, c Course) error
	GetByID(ctx context.Context, id uuid.UUID) (Course, error)
	List(ctx context.Context) ([]Course, error)
	Update(ctx context.Context, c Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
