package router

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tcgmarket/marketplace/backend/handlers"
	"github.com/tcgmarket/marketplace/backend/middleware"
	"github.com/tcgmarket/marketplace/backend/utils"
	"github.com/tcgmarket/marketplace/marketplace/config"
)

// Limiters holds the request budgets applied to the API. A nil limiter
// disables that budget.
type Limiters struct {
	Global middleware.Limiter
	Login  middleware.Limiter
}

// New builds the fiber app with middleware and all API routes.
func New(webApp *handlers.WebApp, limiters Limiters) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "TCG Marketplace API",
		ServerHeader: "TCG-Marketplace",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    config.MaxRequestSize,
	})

	origins := webApp.Config.AllowOrigins()

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: origins != "*",
	}))
	app.Use(middleware.LoggingMiddleware())

	setupRoutes(app, webApp, limiters)
	return app
}

func setupRoutes(app *fiber.App, webApp *handlers.WebApp, limiters Limiters) {
	app.Get("/health", handlers.HealthCheck(webApp))

	api := app.Group("/api")
	if limiters.Global != nil {
		api.Use(middleware.RateLimit(limiters.Global, "api"))
	}

	required := middleware.RequireIdentity(webApp)
	optional := middleware.OptionalIdentity(webApp)

	// Login verifies the token itself
	login := []fiber.Handler{handlers.UserLogin(webApp)}
	if limiters.Login != nil {
		login = append([]fiber.Handler{middleware.RateLimit(limiters.Login, "login")}, login...)
	}
	api.Post("/UserLogin", login...)

	// Cards
	api.Post("/AddCard", required, handlers.AddCard(webApp))
	api.Get("/GetCard", optional, handlers.GetCard(webApp))
	api.Post("/GetCardQuantity", optional, handlers.GetCardQuantity(webApp))
	api.Get("/GetUserCards", required, handlers.GetUserCards(webApp))
	api.Put("/UpdateCard", required, handlers.UpdateCard(webApp))
	api.Get("/SearchCards", optional, handlers.SearchCards(webApp))

	// Decks
	api.Post("/CreateDeck", required, handlers.CreateDeck(webApp))
	api.Get("/GetAllDecks", optional, handlers.GetAllDecks(webApp))
	api.Get("/GetDeck", optional, handlers.GetDeck(webApp))
	api.Get("/GetDeckCards", optional, handlers.GetDeckCards(webApp))
	api.Put("/UpdateDeck", required, handlers.UpdateDeck(webApp))

	// Items
	deleteItem := handlers.DeleteItem(webApp)
	api.Delete("/DeleteItem", required, deleteItem)
	api.Post("/DeleteItem", required, deleteItem)
	api.Post("/ToggleFavorite", required, handlers.ToggleFavorite(webApp))
	api.Get("/GetFavorites", required, handlers.GetFavorites(webApp))

	// Transactions
	api.Post("/AddTransaction", required, handlers.AddTransaction(webApp))
	api.Get("/GetTransaction", required, handlers.GetTransaction(webApp))

	// Profile
	api.Get("/GetUserProfile", required, handlers.GetUserProfile(webApp))
	api.Put("/UpdateUserProfile", required, handlers.UpdateUserProfile(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", utils.GetIPAddress(c)),
		)
		return utils.SendNotFound(c, "The requested endpoint does not exist")
	})
}
