package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tcgmarket/marketplace/backend/config"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/backend/utils"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/domain/identity"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config   *config.WebAppConfig
	DB       Pinger
	Services *webmodels.Services
	Identity *identity.Reader
	Version  string
	Commit   string
}

// respondError maps domain errors onto status codes and the error envelope.
func respondError(c *fiber.Ctx, err error) error {
	var (
		authnErr    *apperr.AuthenticationError
		authzErr    *apperr.AuthorizationError
		validErr    *apperr.ValidationError
		notFoundErr *apperr.NotFoundError
		conflictErr *apperr.ConflictError
	)

	switch {
	case errors.As(err, &authnErr):
		return utils.SendUnauthorized(c, authnErr.Error())
	case errors.As(err, &authzErr):
		slog.Warn("Forbidden operation",
			slog.String("type", "auth"),
			slog.String("user_id", utils.CallerID(c)),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()))
		return utils.SendForbidden(c, authzErr.Error())
	case errors.As(err, &validErr):
		return utils.SendBadRequest(c, validErr.Error(), utils.ValidationDetails(err))
	case errors.As(err, &notFoundErr):
		return utils.SendNotFound(c, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		var details map[string]string
		if conflictErr.Field != "" {
			details = map[string]string{conflictErr.Field: conflictErr.Error()}
		}
		return utils.SendConflict(c, conflictErr.Error(), details)
	case errors.Is(err, context.DeadlineExceeded):
		slog.Error("Request timed out",
			slog.String("type", "http"),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()))
		return utils.SendError(c, http.StatusGatewayTimeout, "TIMEOUT", "The request took too long", nil)
	}

	slog.Error("Request failed",
		slog.String("type", "http"),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("user_id", utils.CallerID(c)),
		slog.String("error", err.Error()))
	return utils.SendInternalServerError(c, "Internal server error")
}

// callerID is only used behind RequireIdentity.
func callerID(c *fiber.Ctx) string {
	return utils.CallerID(c)
}

func HealthCheck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := webmodels.NewHealthCheck(app.Version, app.Commit)

		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()
		if app.DB == nil {
			health.AddComponent("database", "unhealthy", "not configured")
		} else if err := app.DB.Ping(ctx); err != nil {
			health.AddComponent("database", "unhealthy", err.Error())
		} else {
			health.AddComponent("database", "healthy", "")
		}

		status := http.StatusOK
		if health.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		return utils.SendJSON(c, status, health)
	}
}
