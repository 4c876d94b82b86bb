package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

// CardRequest asks for Quantity units of a card inside a deck.
type CardRequest struct {
	CardID   int64 `json:"cardId"`
	Quantity int   `json:"quantity"`
}

type DeckRequest struct {
	OwnerID     string
	Name        string
	Description string
	ImageURL    string
	Cards       []CardRequest
}

type DeckResult struct {
	DeckID     int64
	TotalPrice decimal.Decimal
	Allocated  []CardRequest
	Skipped    []int64
}

// PurchaseItem is either a card line (CardID, Quantity) or a whole deck (DeckID).
type PurchaseItem struct {
	CardID   *int64          `json:"cardId,omitempty"`
	DeckID   *int64          `json:"deckId,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type PurchaseRequest struct {
	BuyerID     string
	Items       []PurchaseItem
	TotalAmount decimal.Decimal
}

type PurchaseResult struct {
	TransactionID int64
	CardsSold     int
	DecksSold     int
	Skipped       int
}

type RemoveRequest struct {
	CallerID string
	CardID   *int64
	DeckID   *int64
}

// CardPatch holds the fields of a card update; nil fields are left unchanged.
type CardPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	ImageURL    *string
}

// DeckPatch holds the fields of a deck update. A nil Cards leaves the
// allocations alone; a non-nil Cards is the complete desired composition.
type DeckPatch struct {
	Name        *string
	Description *string
	ImageURL    *string
	Cards       *[]CardRequest
}

type DebitResult struct {
	CardID   int64
	Quantity int
	Deleted  bool
}

type CardUpdateResult struct {
	Card          *models.Card
	DecksRepriced int
}

type DeckUpdateResult struct {
	Deck *models.Deck
}
