package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/backend/utils"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
)

// DeleteItem removes a card or a deck owned by the caller. The id may come
// from the body or the query string.
func DeleteItem(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref, err := utils.ParseItemRef(c)
		if err != nil {
			return respondError(c, err)
		}

		report, err := app.Services.Inventory.Remove(c.UserContext(), inventory.RemoveRequest{
			CallerID: callerID(c),
			CardID:   ref.CardID,
			DeckID:   ref.DeckID,
		})
		if err != nil {
			return respondError(c, err)
		}

		message := "Deck removed and card quantities restored"
		if ref.CardID != nil {
			message = fmt.Sprintf("Card and %d decks removed", len(report.DecksDisbanded))
		}
		return utils.SendOK(c, webmodels.DeleteItemResponse{Message: message, Report: report})
	}
}

// ToggleFavorite answers 201 when the item became a favorite and 200 when it
// was removed from favorites.
func ToggleFavorite(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ref webmodels.ItemRef
		if err := utils.ParseBody(c, &ref); err != nil {
			return respondError(c, err)
		}
		if err := utils.ValidateItemRef(ref); err != nil {
			return respondError(c, err)
		}

		added, err := app.Services.Catalog.ToggleFavorite(c.UserContext(), callerID(c), ref.CardID, ref.DeckID)
		if err != nil {
			return respondError(c, err)
		}

		item := "Deck"
		if ref.CardID != nil {
			item = "Card"
		}
		if added {
			return utils.SendCreated(c, webmodels.MessageResponse{Message: item + " added to favorites"})
		}
		return utils.SendOK(c, webmodels.MessageResponse{Message: item + " removed from favorites"})
	}
}

func GetFavorites(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		favorites, err := app.Services.Catalog.GetFavorites(c.UserContext(), callerID(c))
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, favorites)
	}
}
