package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Deck struct {
	bun.BaseModel `bun:"table:decks,alias:d"`

	ID          int64           `bun:"deck_id,pk,autoincrement" json:"DeckId"`
	UserID      string          `bun:"user_id,notnull" json:"UserId"`
	Name        string          `bun:"name,notnull" json:"Name"`
	Description string          `bun:"description,notnull,default:''" json:"Description"`
	TotalPrice  decimal.Decimal `bun:"total_price,type:numeric(12,2),notnull,default:0" json:"TotalPrice"`
	ImageURL    string          `bun:"image_url,notnull,default:''" json:"ImageUrl"`
	CreatedAt   time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"CreatedAt"`
	UpdatedAt   time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// DeckCard reserves Quantity units of a card inside a deck.
type DeckCard struct {
	bun.BaseModel `bun:"table:deck_cards,alias:dc"`

	DeckID   int64 `bun:"deck_id,pk" json:"DeckId"`
	CardID   int64 `bun:"card_id,pk" json:"CardId"`
	Quantity int   `bun:"quantity,notnull" json:"Quantity"`
}
