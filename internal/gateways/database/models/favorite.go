package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Favorite struct {
	bun.BaseModel `bun:"table:favorites,alias:f"`

	UserID    string    `bun:"user_id,pk"`
	CardID    int64     `bun:"card_id,pk"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type FavoriteDeck struct {
	bun.BaseModel `bun:"table:favorites_decks,alias:fd"`

	UserID    string    `bun:"user_id,pk"`
	DeckID    int64     `bun:"deck_id,pk"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
