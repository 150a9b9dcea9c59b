package routes

import (
	"github.com/gofiber/fiber/v2"

	"devconnector/internal/handlers"
	"devconnector/internal/middleware"
)

type Deps struct {
	Auth      *handlers.AuthHandler
	Posts     *handlers.PostHandler
	JWTSecret string
}

// Register mounts the whole API. Registration and login are public;
// everything else sits behind the bearer-token guard.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	api.Post("/users", d.Auth.Register)
	api.Post("/auth", d.Auth.Login)

	guard := middleware.RequireAuth(d.JWTSecret)
	api.Get("/auth", guard, d.Auth.CurrentUser)

	PostRoutes(api, guard, d.Posts)
}

func PostRoutes(api fiber.Router, guard fiber.Handler, h *handlers.PostHandler) {
	posts := api.Group("/posts", guard)

	posts.Post("/", h.Create)
	posts.Get("/", h.List)

	posts.Put("/like/:id", h.Like)
	posts.Put("/unlike/:id", h.Unlike)

	posts.Post("/comment/:id", h.AddComment)
	posts.Delete("/comment/:id/:comment_id", h.DeleteComment)

	posts.Get("/:id", h.Get)
	posts.Delete("/:id", h.Delete)
}
