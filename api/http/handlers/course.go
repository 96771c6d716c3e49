package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cloudblitz/learnhub/api/http/presenter"
	"github.com/cloudblitz/learnhub/pkg/course"
	"github.com/cloudblitz/learnhub/pkg/validation"
)

type CourseHandler struct {
	uc course.UseCase
}

func NewCourseHandler(uc course.UseCase) *CourseHandler { return &CourseHandler{uc: uc} }

type courseRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"required,min=10,max=500"`
	Instructor  string  `json:"instructor" validate:"required,min=2,max=50"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

func (r courseRequest) toInput() course.Input {
	return course.Input{
		Title:       r.Title,
		Description: r.Description,
		Instructor:  r.Instructor,
		Duration:    r.Duration,
		Price:       r.Price,
	}
}

// List returns all catalog entries.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.uc.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return presenter.Success(c, http.StatusOK, courses)
}

// GetByID returns one course or 404.
func (h *CourseHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid course id")
	}
	got, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load course")
	}
	return presenter.Success(c, http.StatusOK, got)
}

// Create validates input and stores a new course.
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validation.Validate(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	created, err := h.uc.Create(c.Context(), req.toInput())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create course")
	}
	return presenter.Success(c, http.StatusCreated, created)
}

// Update replaces all mutable fields of an existing course.
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid course id")
	}
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validation.Validate(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	updated, err := h.uc.Update(c.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update course")
	}
	return presenter.Success(c, http.StatusOK, updated)
}

// Delete removes a course or reports 404.
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid course id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete course")
	}
	return presenter.Success(c, http.StatusOK, "course deleted successfully")
}
