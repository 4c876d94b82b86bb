package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tcgmarket/marketplace/backend/handlers"
	"github.com/tcgmarket/marketplace/backend/utils"
)

// RequireIdentity rejects requests without a valid bearer token and stores
// the caller's claims in the context.
func RequireIdentity(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := webApp.Identity.Read(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			slog.Debug("Identity required: rejected",
				slog.String("type", "auth"),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()))
			return utils.SendUnauthorized(c, err.Error())
		}

		c.Locals(utils.ClaimsKey, claims)
		return c.Next()
	}
}

// OptionalIdentity stores the caller's claims when a valid token is present
// and otherwise lets the request through anonymously.
func OptionalIdentity(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		claims, err := webApp.Identity.Read(c.UserContext(), header)
		if err != nil {
			slog.Debug("Optional identity: ignoring invalid token",
				slog.String("type", "auth"),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()))
			return c.Next()
		}

		c.Locals(utils.ClaimsKey, claims)
		return c.Next()
	}
}
