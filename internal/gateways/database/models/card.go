package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

func init() {
	// prices go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Card is a listing owned by one seller. Quantity is the sellable count;
// units reserved inside decks live in DeckCard rows.
type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID          int64           `bun:"card_id,pk,autoincrement" json:"CardId"`
	UserID      string          `bun:"user_id,notnull" json:"UserId"`
	Name        string          `bun:"name,notnull" json:"Name"`
	Description string          `bun:"description,notnull,default:''" json:"Description"`
	Price       decimal.Decimal `bun:"price,type:numeric(12,2),notnull" json:"Price"`
	Quantity    int             `bun:"quantity,notnull" json:"Quantity"`
	ImageURL    string          `bun:"image_url,notnull,default:''" json:"ImageUrl"`
	CreatedAt   time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"CreatedAt"`
	UpdatedAt   time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// AllocatedCard is a card as seen from inside a deck.
type AllocatedCard struct {
	Card `bun:",extend"`

	DeckQuantity int `bun:"deck_quantity,scanonly" json:"DeckQuantity"`
}

// CardQuantity is the projection used by batch stock lookups.
type CardQuantity struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID       int64 `bun:"card_id"`
	Quantity int   `bun:"quantity"`
}
