package routes

import (
	"github.com/gofiber/fiber/v2"
	graphql "github.com/graph-gophers/graphql-go"

	"blogfeed/internal/handlers"
	"blogfeed/internal/middleware"
	"blogfeed/internal/storage"
)

type Deps struct {
	Schema *graphql.Schema
	Images *storage.Images
}

func Register(app *fiber.App, d Deps) {
	app.Post("/graphql", handlers.GraphQL(d.Schema))
	app.Put("/post-image", middleware.RequireAuth(), handlers.UploadImage(d.Images))
	app.Static("/images", d.Images.Dir)
}
