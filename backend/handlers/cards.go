package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/backend/utils"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/domain/catalog"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	"github.com/tcgmarket/marketplace/marketplace/config"
)

// AddCard lists a new card for the caller.
func AddCard(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.AddCardRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if err := utils.ValidateAddCard(&req); err != nil {
			return respondError(c, err)
		}

		card, err := app.Services.Catalog.AddCard(c.UserContext(), catalog.NewCard{
			OwnerID:     callerID(c),
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			Quantity:    *req.Quantity,
			Image:       req.Image,
		})
		if err != nil {
			return respondError(c, err)
		}

		return utils.SendCreated(c, webmodels.AddCardResponse{
			Message:  "Card added",
			CardID:   card.ID,
			ImageURL: card.ImageURL,
		})
	}
}

func GetCard(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cardID, err := utils.QueryID(c, "cardId")
		if err != nil {
			return respondError(c, err)
		}
		card, err := app.Services.Catalog.GetCard(c.UserContext(), cardID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, card)
	}
}

// GetCardQuantity answers {cardId: quantity} for the requested ids that exist.
func GetCardQuantity(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.CardQuantityRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if len(req.CardIDs) == 0 {
			return respondError(c, &apperr.ValidationError{Field: "cardIds", Message: "a non-empty list of card ids is required"})
		}

		quantities, err := app.Services.Inventory.Quantities(c.UserContext(), req.CardIDs)
		if err != nil {
			return respondError(c, err)
		}
		if len(quantities) == 0 {
			return utils.SendNotFound(c, "No cards found for the given ids")
		}

		body := make(map[string]int, len(quantities))
		for id, qty := range quantities {
			body[strconv.FormatInt(id, 10)] = qty
		}
		return utils.SendOK(c, body)
	}
}

func GetUserCards(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cards, err := app.Services.Catalog.ListUserCards(c.UserContext(), callerID(c))
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, cards)
	}
}

// UpdateCard patches one of the caller's cards. A new image is uploaded
// first and removed again if the update fails.
func UpdateCard(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.UpdateCardRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if req.CardID <= 0 {
			return respondError(c, &apperr.ValidationError{Field: "cardId", Message: "cardId is required"})
		}

		patch := inventory.CardPatch{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Quantity:    req.Quantity,
		}

		ctx := c.UserContext()
		imageURL, err := app.Services.Catalog.StoreImage(ctx, config.CardImageFolder, req.Image)
		if err != nil {
			return respondError(c, err)
		}
		if imageURL != "" {
			patch.ImageURL = &imageURL
		}

		result, err := app.Services.Inventory.UpdateCard(ctx, callerID(c), req.CardID, patch)
		if err != nil {
			app.Services.Catalog.DiscardImage(ctx, imageURL)
			return respondError(c, err)
		}

		return utils.SendOK(c, webmodels.UpdateCardResponse{
			Message:       "Card updated",
			ImageURL:      result.Card.ImageURL,
			DecksRepriced: result.DecksRepriced,
		})
	}
}

// SearchCards fuzzy-matches ?q against the names of cards in stock.
func SearchCards(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", config.MaxSearchResults)
		cards, err := app.Services.Catalog.SearchCards(c.UserContext(), c.Query("q"), limit)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, cards)
	}
}
