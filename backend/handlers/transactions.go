package handlers

import (
	"github.com/gofiber/fiber/v2"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/backend/utils"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
)

// AddTransaction records a purchase by the caller. Either every line is
// applied or none is.
func AddTransaction(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.AddTransactionRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}

		result, err := app.Services.Inventory.Purchase(c.UserContext(), inventory.PurchaseRequest{
			BuyerID:     callerID(c),
			Items:       req.Items,
			TotalAmount: req.TotalAmount,
		})
		if err != nil {
			return respondError(c, err)
		}

		return utils.SendCreated(c, webmodels.AddTransactionResponse{
			Message:       "Transaction completed",
			TransactionID: result.TransactionID,
		})
	}
}

func GetTransaction(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := app.Services.Catalog.ListTransactions(c.UserContext(), callerID(c))
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendOK(c, webmodels.TransactionsResponse{Transactions: views})
	}
}
