package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"blogfeed/database"
	"blogfeed/internal/auth"
	"blogfeed/internal/bootstrap"
	"blogfeed/internal/graph"
	"blogfeed/internal/memstore"
	"blogfeed/internal/middleware"
	"blogfeed/internal/repository"
	"blogfeed/internal/routes"
	"blogfeed/internal/storage"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := database.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	tokens := auth.NewService([]byte(cfg.JWTSecret), time.Hour)

	var store repository.Store
	if cfg.MongoURI == "" {
		log.Println("MONGO_URI not set, falling back to the in-memory store")
		store = memstore.New()
	} else {
		client, err := database.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo connect failed: %v", err)
		}
		defer database.DisconnectMongo(client)

		db := client.Database(cfg.DBName)
		if err := bootstrap.EnsureIndexes(db); err != nil {
			log.Fatalf("ensure indexes failed: %v", err)
		}
		store = repository.NewMongoStore(db)
	}

	images, err := storage.NewImages(cfg.ImageDir)
	if err != nil {
		log.Fatalf("image dir: %v", err)
	}

	schema := graph.NewSchema(graph.New(store, images, tokens))

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.BearerAuth(tokens))

	routes.Register(app, routes.Deps{
		Schema: schema,
		Images: images,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
