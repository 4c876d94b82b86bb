package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/backend/utils"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	"github.com/tcgmarket/marketplace/marketplace/config"
)

// CreateDeck builds a deck from the caller's card requests. When a card runs
// short the deck built so far is kept and its id is reported with the error.
func CreateDeck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.CreateDeckRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if strings.TrimSpace(req.Name) == "" || len(req.Cards) == 0 {
			return respondError(c, &apperr.ValidationError{Field: "cards", Message: "a deck name and a list of cards are required"})
		}

		ctx := c.UserContext()
		imageURL := req.ImageURL
		uploaded, err := app.Services.Catalog.StoreImage(ctx, config.DeckImageFolder, req.Image)
		if err != nil {
			return respondError(c, err)
		}
		if uploaded != "" {
			imageURL = uploaded
		}
		if imageURL == "" {
			imageURL = app.Services.Catalog.DefaultImageURL()
		}

		result, err := app.Services.Inventory.BuildDeck(ctx, inventory.DeckRequest{
			OwnerID:     callerID(c),
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    imageURL,
			Cards:       req.Cards,
		})
		if err != nil {
			var conflict *apperr.ConflictError
			if result != nil && errors.As(err, &conflict) {
				return utils.SendConflict(c, conflict.Error(), map[string]string{
					"deckId":     strconv.FormatInt(result.DeckID, 10),
					"totalPrice": result.TotalPrice.StringFixed(2),
				})
			}
			if result == nil {
				app.Services.Catalog.DiscardImage(ctx, uploaded)
			}
			return respondError(c, err)
		}

		return utils.SendCreated(c, webmodels.CreateDeckResponse{
			Message:    "Deck created",
			DeckID:     result.DeckID,
			TotalPrice: result.TotalPrice,
		})
	}
}

// GetAllDecks lists every deck except the caller's own.
func GetAllDecks(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decks, err := app.Services.Catalog.ListDecks(c.UserContext(), utils.CallerID(c))
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, decks)
	}
}

func GetDeck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deckID, err := utils.QueryID(c, "deckId")
		if err != nil {
			return respondError(c, err)
		}
		deck, err := app.Services.Catalog.GetDeck(c.UserContext(), deckID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, deck)
	}
}

func GetDeckCards(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deckID, err := utils.QueryID(c, "deckId")
		if err != nil {
			return respondError(c, err)
		}
		cards, err := app.Services.Catalog.GetDeckCards(c.UserContext(), deckID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, cards)
	}
}

// UpdateDeck patches one of the caller's decks, optionally replacing its
// composition and image.
func UpdateDeck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.UpdateDeckRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if req.DeckID <= 0 {
			return respondError(c, &apperr.ValidationError{Field: "deckId", Message: "deckId is required"})
		}

		patch := inventory.DeckPatch{
			Name:        req.Name,
			Description: req.Description,
			Cards:       req.Cards,
		}

		ctx := c.UserContext()
		imageURL, err := app.Services.Catalog.StoreImage(ctx, config.DeckImageFolder, req.Image)
		if err != nil {
			return respondError(c, err)
		}
		if imageURL != "" {
			patch.ImageURL = &imageURL
		}

		result, err := app.Services.Inventory.UpdateDeck(ctx, callerID(c), req.DeckID, patch)
		if err != nil {
			app.Services.Catalog.DiscardImage(ctx, imageURL)
			return respondError(c, err)
		}

		return utils.SendOK(c, webmodels.UpdateDeckResponse{
			Message:    "Deck updated",
			ImageURL:   result.Deck.ImageURL,
			TotalPrice: result.Deck.TotalPrice,
		})
	}
}
