package course

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Input carries validated course fields for create/update.
type Input struct {
	Title       string
	Description string
	Instructor  string
	Duration    int
	Price       float64
}

// UseCase is the single canonical CRUD path over the catalog.
type UseCase interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (Course, error)
	Create(ctx context.Context, in Input) (Course, error)
	Update(ctx context.Context, id uuid.UUID, in Input) (Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SeedDemo(ctx context.Context) error
}

type service struct {
	repo Repository
}

// NewService returns the default catalog implementation.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]Course, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, in Input) (Course, error) {
	c := Course{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Instructor:  in.Instructor,
		Duration:    in.Duration,
		Price:       in.Price,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Course{}, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in Input) (Course, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Course{}, err
	}
	c.Title = in.Title
	c.Description = in.Description
	c.Instructor = in.Instructor
	c.Duration = in.Duration
	c.Price = in.Price
	if err := s.repo.Update(ctx, c); err != nil {
		return Course{}, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

var demoCourses = []Input{
	{
		Title:       "AWS Fundamentals",
		Description: "Learn the basics of Amazon Web Services including EC2, S3, and RDS",
		Instructor:  "John Smith",
		Duration:    40,
		Price:       299.99,
	},
	{
		Title:       "Docker & Kubernetes",
		Description: "Master containerization with Docker and orchestration with Kubernetes",
		Instructor:  "Sarah Johnson",
		Duration:    35,
		Price:       249.99,
	},
	{
		Title:       "Cloud Security Best Practices",
		Description: "Comprehensive guide to securing cloud infrastructure and applications",
		Instructor:  "Mike Chen",
		Duration:    25,
		Price:       199.99,
	},
}

// SeedDemo inserts the demo courses when the catalog is empty.
func (s *service) SeedDemo(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, in := range demoCourses {
		if _, err := s.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
