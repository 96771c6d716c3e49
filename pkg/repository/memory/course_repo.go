package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/cloudblitz/learnhub/pkg/course"
)

// CourseRepository implements course.Repository with a mutex-guarded map.
type CourseRepository struct {
	mu      sync.RWMutex
	courses map[uuid.UUID]course.Course
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: map[uuid.UUID]course.Course{}}
}

func (r *CourseRepository) Create(_ context.Context, c course.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses[c.ID] = c
	return nil
}

func (r *CourseRepository) GetByID(_ context.Context, id uuid.UUID) (course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.courses[id]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	return c, nil
}

func (r *CourseRepository) List(_ context.Context) ([]course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]course.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *CourseRepository) Update(_ context.Context, c course.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[c.ID]; !ok {
		return course.ErrNotFound
	}
	r.courses[c.ID] = c
	return nil
}

func (r *CourseRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[id]; !ok {
		return course.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *CourseRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.courses), nil
}
