package models

// RemovalReport summarizes what an item removal touched.
type RemovalReport struct {
	CardID         int64    `json:"cardId,omitempty"`
	DeckID         int64    `json:"deckId,omitempty"`
	DecksDisbanded []int64  `json:"decksDisbanded,omitempty"`
	CardsRestocked int      `json:"cardsRestocked"`
	Images         []string `json:"-"`
}
