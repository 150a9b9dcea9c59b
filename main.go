// @title DevConnector API
// @version 1.0
// @description Social network REST API: users, posts, likes and comments.
// @host localhost:5000
// @BasePath /

package main

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"devconnector/bootstrap"
	"devconnector/config"
	"devconnector/database"
	_ "devconnector/docs"
	"devconnector/internal/handlers"
	"devconnector/internal/repository"
	"devconnector/internal/routes"
	"devconnector/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ttlHours, err := strconv.Atoi(cfg.JWTTTLHours)
	if err != nil || ttlHours <= 0 {
		log.Fatalf("invalid JWT_TTL_HOURS: %q", cfg.JWTTTLHours)
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)

	deps := routes.Deps{
		Auth: &handlers.AuthHandler{
			Service: services.NewAuthService(users, cfg.JWTSecret, time.Duration(ttlHours)*time.Hour),
		},
		Posts: &handlers.PostHandler{
			Service: services.NewPostService(posts, users),
		},
		JWTSecret: cfg.JWTSecret,
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, deps)

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
