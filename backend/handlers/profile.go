package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/backend/utils"
)

// UserLogin fully verifies the bearer token, whatever the request-time
// verification mode, and provisions the user on first login.
func UserLogin(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		claims, err := app.Identity.Verify(ctx, c.Get(fiber.HeaderAuthorization))
		if err != nil {
			slog.Warn("Login rejected",
				slog.String("type", "auth"),
				slog.String("ip", utils.GetIPAddress(c)),
				slog.String("error", err.Error()))
			return respondError(c, err)
		}

		user, err := app.Services.Profile.Login(ctx, claims)
		if err != nil {
			return respondError(c, err)
		}

		return utils.SendOK(c, webmodels.LoginResponse{Message: "Login successful", User: user})
	}
}

func GetUserProfile(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := app.Services.Profile.GetProfile(c.UserContext(), callerID(c))
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, profile)
	}
}

func UpdateUserProfile(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.UpdateProfileRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}

		username, err := app.Services.Profile.UpdateUsername(c.UserContext(), callerID(c), req.Username)
		if err != nil {
			return respondError(c, err)
		}

		return utils.SendOK(c, webmodels.UpdateProfileResponse{Message: "Profile updated", Username: username})
	}
}
