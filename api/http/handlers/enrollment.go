package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudblitz/learnhub/api/http/presenter"
	"github.com/cloudblitz/learnhub/pkg/enrollment"
	"github.com/cloudblitz/learnhub/pkg/security/token"
	"github.com/cloudblitz/learnhub/pkg/validation"
)

type EnrollmentHandler struct {
	uc enrollment.UseCase
}

func NewEnrollmentHandler(uc enrollment.UseCase) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc}
}

type enrollRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// List returns the authenticated caller's enrollments.
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals(token.LocalUserID).(string)
	if userID == "" {
		return presenter.Error(c, http.StatusUnauthorized, token.ErrNoToken.Error())
	}

	list, err := h.uc.ListByUser(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list enrollments")
	}
	if list == nil {
		list = []enrollment.Enrollment{}
	}
	return presenter.Success(c, http.StatusOK, list)
}

// Enroll records the authenticated caller into a course.
func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	userID, _ := c.Locals(token.LocalUserID).(string)
	if userID == "" {
		return presenter.Error(c, http.StatusUnauthorized, token.ErrNoToken.Error())
	}

	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validation.Validate(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	e, err := h.uc.Enroll(c.Context(), userID, req.CourseID)
	if err != nil {
		if errors.Is(err, enrollment.ErrAlreadyEnrolled) {
			return presenter.Error(c, http.StatusConflict, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to enroll")
	}
	return presenter.Success(c, http.StatusCreated, e)
}
