package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/cloudblitz/learnhub/api/http"
	"github.com/cloudblitz/learnhub/api/http/handlers"
	"github.com/cloudblitz/learnhub/pkg/auth"
	"github.com/cloudblitz/learnhub/pkg/repository/memory"
	"github.com/cloudblitz/learnhub/pkg/security/password"
	"github.com/cloudblitz/learnhub/pkg/security/token"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, target, bearer string, payload any) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	codec := token.NewCodec("test-secret", time.Hour)
	svc := auth.NewAuthService(memory.NewUserRepository(), password.NewHasher(4), codec)

	app := apihttp.NewApp("*")
	apihttp.RegisterAuth(app,
		handlers.NewAuthHandler(svc),
		handlers.NewHealthHandler("auth-service", nil),
		token.NewAuthMiddleware(codec),
	)
	return app
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func TestRegisterLoginMeScenario(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)

	// Register
	status, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Test", "email": "t@x.com", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var reg authPayload
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "Test", reg.User.Name)

	// Login
	status, env = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "t@x.com", "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, status)

	var login authPayload
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)

	// /me with the issued token
	status, env = doJSON(t, app, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var me struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, reg.User.ID, me.ID)
	assert.Equal(t, "Test", me.Name)
	assert.Equal(t, "t@x.com", me.Email)

	// Wrong password
	status, env = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "t@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid email or password", *env.Error)
}

func TestRegisterDuplicateConflict(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "A", "email": "dup@x.com", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, status)

	status, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "B", "email": "dup@x.com", "password": "pw123456",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Test", "email": "not-an-email", "password": "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "email")
}

func TestMeWithoutToken(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t)

	// Rejections from the auth middleware carry the same envelope as
	// the resource handlers.
	status, env := doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "no token provided", *env.Error)
}
