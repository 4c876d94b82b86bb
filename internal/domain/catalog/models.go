package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

// NewCard is a listing request. Image is base64, optionally as a data URL.
type NewCard struct {
	OwnerID     string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Image       string
}

type DeckDetail struct {
	*models.Deck
	Cards []*models.AllocatedCard `json:"Cards"`
}

type Favorites struct {
	Cards []*models.Card `json:"favoriteCards"`
	Decks []*models.Deck `json:"favoriteDecks"`
}

type TransactionView struct {
	TransactionID   int64             `json:"TransactionId"`
	TotalAmount     decimal.Decimal   `json:"TotalAmount"`
	TransactionDate time.Time         `json:"TransactionDate"`
	Details         []TransactionLine `json:"details"`
}

// TransactionLine is one sold card or deck. Fields of the other kind are null.
type TransactionLine struct {
	CardName     *string          `json:"CardName"`
	CardPrice    *decimal.Decimal `json:"CardPrice"`
	CardQuantity *int             `json:"CardQuantity"`
	DeckName     *string          `json:"DeckName"`
	DeckPrice    *decimal.Decimal `json:"DeckPrice"`
}

func newTransactionView(t *models.Transaction) TransactionView {
	view := TransactionView{
		TransactionID:   t.ID,
		TotalAmount:     t.TotalAmount,
		TransactionDate: t.TransactionDate,
		Details:         make([]TransactionLine, 0, len(t.Details)),
	}
	for _, d := range t.Details {
		price, quantity := d.Price, d.Quantity
		var line TransactionLine
		switch {
		case d.CardHistory != nil:
			line.CardName = &d.CardHistory.Name
			line.CardPrice = &price
			line.CardQuantity = &quantity
		case d.DeckHistory != nil:
			line.DeckName = &d.DeckHistory.Name
			line.DeckPrice = &price
		default:
			continue
		}
		view.Details = append(view.Details, line)
	}
	return view
}
