package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/cloudblitz/learnhub/api/http"
	"github.com/cloudblitz/learnhub/api/http/handlers"
	"github.com/cloudblitz/learnhub/pkg/enrollment"
	"github.com/cloudblitz/learnhub/pkg/repository/memory"
	"github.com/cloudblitz/learnhub/pkg/security/token"
)

func newEnrollApp(t *testing.T) (*fiber.App, *token.Codec) {
	t.Helper()

	codec := token.NewCodec("test-secret", time.Hour)
	svc := enrollment.NewService(memory.NewEnrollmentRepository())

	app := apihttp.NewApp("*")
	apihttp.RegisterEnrollments(app,
		handlers.NewEnrollmentHandler(svc),
		handlers.NewHealthHandler("enroll-service", nil),
		token.NewAuthMiddleware(codec),
	)
	return app, codec
}

func TestEnrollScenario(t *testing.T) {
	t.Parallel()

	app, codec := newEnrollApp(t)
	tok, err := codec.Issue("u1@x.com", "u1")
	require.NoError(t, err)

	// Enroll in course "1"
	status, env := doJSON(t, app, http.MethodPost, "/api/enroll/", tok, fiber.Map{"courseId": "1"})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var e enrollment.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &e))
	assert.Equal(t, "u1", e.UserID)
	assert.Equal(t, "AWS Fundamentals", e.CourseTitle)
	assert.Equal(t, enrollment.StatusActive, e.Status)

	// Re-enroll same (user, course) is rejected
	status, env = doJSON(t, app, http.MethodPost, "/api/enroll/", tok, fiber.Map{"courseId": "1"})
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "user is already enrolled in this course", *env.Error)

	// The list reflects the single enrollment
	status, env = doJSON(t, app, http.MethodGet, "/api/enroll/", tok, nil)
	require.Equal(t, http.StatusOK, status)
	var list []enrollment.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestEnrollRequiresToken(t *testing.T) {
	t.Parallel()

	app, _ := newEnrollApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/enroll/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "no token provided", *env.Error)
}

func TestEnrollRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	app, _ := newEnrollApp(t)
	expired := token.NewCodec("test-secret", -1*time.Minute)
	tok, err := expired.Issue("u1@x.com", "u1")
	require.NoError(t, err)

	status, _ := doJSON(t, app, http.MethodGet, "/api/enroll/", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestEnrollValidatesCourseID(t *testing.T) {
	t.Parallel()

	app, codec := newEnrollApp(t)
	tok, err := codec.Issue("u1@x.com", "u1")
	require.NoError(t, err)

	status, env := doJSON(t, app, http.MethodPost, "/api/enroll/", tok, fiber.Map{"courseId": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "courseId")
}
