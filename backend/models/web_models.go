package models

import (
	"github.com/shopspring/decimal"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

// AddCardRequest is the body of POST /api/AddCard. Image is base64, optionally
// as a data URL.
type AddCardRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Image       string           `json:"image"`
}

type AddTransactionRequest struct {
	Items       []inventory.PurchaseItem `json:"items"`
	TotalAmount decimal.Decimal          `json:"totalAmount"`
}

type CreateDeckRequest struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	ImageURL    string                  `json:"imageUrl"`
	Image       string                  `json:"image"`
	Cards       []inventory.CardRequest `json:"cards"`
}

// ItemRef names a card or a deck; exactly one must be set.
type ItemRef struct {
	CardID *int64 `json:"cardId" query:"cardId"`
	DeckID *int64 `json:"deckId" query:"deckId"`
}

type CardQuantityRequest struct {
	CardIDs []int64 `json:"cardIds"`
}

type UpdateCardRequest struct {
	CardID      int64            `json:"cardId"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Image       string           `json:"image"`
}

type UpdateDeckRequest struct {
	DeckID      int64                    `json:"deckId"`
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	Cards       *[]inventory.CardRequest `json:"cards"`
	Image       string                   `json:"image"`
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AddCardResponse struct {
	Message  string `json:"message"`
	CardID   int64  `json:"cardId"`
	ImageURL string `json:"imageUrl"`
}

type AddTransactionResponse struct {
	Message       string `json:"message"`
	TransactionID int64  `json:"transactionId"`
}

type CreateDeckResponse struct {
	Message    string          `json:"message"`
	DeckID     int64           `json:"deckId"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type DeleteItemResponse struct {
	Message string                `json:"message"`
	Report  *models.RemovalReport `json:"report"`
}

type UpdateCardResponse struct {
	Message       string `json:"message"`
	ImageURL      string `json:"imageUrl"`
	DecksRepriced int    `json:"decksRepriced"`
}

type UpdateDeckResponse struct {
	Message    string          `json:"message"`
	ImageURL   string          `json:"imageUrl"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type UpdateProfileResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type TransactionsResponse struct {
	Transactions any `json:"transactions"`
}
