package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	apimiddleware "github.com/9novikoff/TaskManagementSystem/internal/api/middleware"
	"github.com/9novikoff/TaskManagementSystem/internal/service"
	"github.com/9novikoff/TaskManagementSystem/internal/service/auth"
)

// NewRouter builds the application router: public registration and login
// endpoints, and task CRUD endpoints behind the JWT auth middleware.
func NewRouter(
	userService service.UserService,
	taskService service.TaskService,
	jwtService auth.JWTService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := NewAuthHandler(userService)
	taskHandler := NewTaskHandler(taskService)
	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/", taskHandler.Create)
		r.Get("/", taskHandler.List)
		r.Get("/{taskID}", taskHandler.Get)
		r.Put("/{taskID}", taskHandler.Update)
		r.Delete("/{taskID}", taskHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
