// Package http wires service routes onto Fiber apps. Each service binary
// calls its own Register* function; the three surfaces stay separate so
// the services can be deployed independently.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/cloudblitz/learnhub/api/http/handlers"
)

// NewApp builds a Fiber app with the middleware common to all three
// services. corsOrigins is a comma-separated allow list ("*" for any);
// the browser frontend calls all three services cross-origin.
func NewApp(corsOrigins string) *fiber.App {
	app := fiber.New()
	app.Use(cors.New(cors.Config{AllowOrigins: corsOrigins}))
	return app
}

// RegisterAuth wires the auth-service routes.
func RegisterAuth(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Get("/me", authMW, auth.Me)
	a.Get("/health", health.Health)
}

// RegisterCourses wires the course-service routes.
func RegisterCourses(app *fiber.App, courses *handlers.CourseHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	api.Get("/ready", health.Ready)

	cg := api.Group("/courses")
	cg.Get("/health", health.Health)
	cg.Get("/", courses.List)
	cg.Post("/", courses.Create)
	cg.Get("/:id", courses.GetByID)
	cg.Put("/:id", courses.Update)
	cg.Delete("/:id", courses.Delete)
}

// RegisterEnrollments wires the enroll-service routes. Both resource
// operations require an authenticated identity.
func RegisterEnrollments(app *fiber.App, enrollments *handlers.EnrollmentHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	api.Get("/ready", health.Ready)

	eg := api.Group("/enroll")
	eg.Get("/health", health.Health)
	eg.Get("/", authMW, enrollments.List)
	eg.Post("/", authMW, enrollments.Enroll)
}
