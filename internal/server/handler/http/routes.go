// Package http provides HTTP routing and middleware configuration
// for the taskwarden service.
package http

import (
	"net/http"

	"github.com/atinyakov/taskwarden/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the taskwarden API. It applies JSON content-type enforcement and
// request logging to every route and bearer-token authentication to
// the task and notification endpoints.
//
// Routes:
//
//	POST   /api/register       → authHandler.Register
//	POST   /api/login          → authHandler.Login
//	GET    /api/tasks          → taskHandler.List          (protected)
//	POST   /api/tasks          → taskHandler.Create        (protected)
//	PUT    /api/tasks/{id}     → taskHandler.Update        (protected)
//	DELETE /api/tasks/{id}     → taskHandler.Delete        (protected)
//	GET    /api/notifications  → taskHandler.Notifications (protected)
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	jwtSecret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json.
	// Bodyless requests (GET, DELETE) pass through unchecked.
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(jwtSecret))

			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
			r.Get("/notifications", taskHandler.Notifications)
		})
	})

	return r
}
