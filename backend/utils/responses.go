package utils

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/internal/domain/identity"
)

// ClaimsKey is the fiber.Ctx Locals key holding the caller's *identity.Claims.
const ClaimsKey = "claims"

// SendJSON sends a JSON response using Fiber
func SendJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

func SendOK(c *fiber.Ctx, data interface{}) error {
	return SendJSON(c, http.StatusOK, data)
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return SendJSON(c, http.StatusCreated, data)
}

// SendError sends an error JSON response
func SendError(c *fiber.Ctx, statusCode int, code, message string, details map[string]string) error {
	response := models.NewErrorResponse(code, message, details)
	return SendJSON(c, statusCode, response)
}

func SendBadRequest(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// SendConflict answers 400: insufficient stock and taken usernames are
// reported as bad requests.
func SendConflict(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "CONFLICT", message, details)
}

func SendInternalServerError(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

func SendTooManyRequests(c *fiber.Ctx) error {
	return SendError(c, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
		"Too many requests. Please try again later.", nil)
}

// ExtractClaims returns the identity stored by the auth middleware.
func ExtractClaims(c *fiber.Ctx) (*identity.Claims, bool) {
	claims, ok := c.Locals(ClaimsKey).(*identity.Claims)
	return claims, ok && claims != nil
}

// CallerID is the caller's user id, or "" for anonymous requests.
func CallerID(c *fiber.Ctx) string {
	if claims, ok := ExtractClaims(c); ok {
		return claims.UserID()
	}
	return ""
}

// GetIPAddress extracts the client IP address
func GetIPAddress(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}

func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
