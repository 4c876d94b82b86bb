package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Transaction struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`

	ID              int64           `bun:"transaction_id,pk,autoincrement"`
	UserID          string          `bun:"user_id,notnull"`
	TotalAmount     decimal.Decimal `bun:"total_amount,type:numeric(12,2),notnull"`
	TransactionDate time.Time       `bun:"transaction_date,nullzero,notnull,default:current_timestamp"`

	Details []*TransactionDetail `bun:"rel:has-many,join:transaction_id=transaction_id"`
}

// TransactionDetail references exactly one of CardHistoryID or DeckHistoryID.
type TransactionDetail struct {
	bun.BaseModel `bun:"table:transaction_details,alias:td"`

	ID            int64           `bun:"detail_id,pk,autoincrement"`
	TransactionID int64           `bun:"transaction_id,notnull"`
	CardHistoryID *int64          `bun:"card_history_id"`
	DeckHistoryID *int64          `bun:"deck_history_id"`
	Quantity      int             `bun:"quantity,notnull"`
	Price         decimal.Decimal `bun:"price,type:numeric(12,2),notnull"`

	CardHistory *CardHistory `bun:"rel:belongs-to,join:card_history_id=card_history_id"`
	DeckHistory *DeckHistory `bun:"rel:belongs-to,join:deck_history_id=deck_history_id"`
}

// CardHistory is the snapshot of a card taken when units of it were sold.
type CardHistory struct {
	bun.BaseModel `bun:"table:cards_history,alias:ch"`

	ID          int64           `bun:"card_history_id,pk,autoincrement"`
	CardID      int64           `bun:"card_id,notnull"`
	SellerID    string          `bun:"seller_id,notnull"`
	Name        string          `bun:"name,notnull"`
	Description string          `bun:"description,notnull,default:''"`
	Price       decimal.Decimal `bun:"price,type:numeric(12,2),notnull"`
	Quantity    int             `bun:"quantity,notnull"`
	ImageURL    string          `bun:"image_url,notnull,default:''"`
	SoldAt      time.Time       `bun:"sold_at,nullzero,notnull,default:current_timestamp"`
}

// DeckHistory is the snapshot of a deck taken when it was sold.
type DeckHistory struct {
	bun.BaseModel `bun:"table:decks_history,alias:dh"`

	ID          int64           `bun:"deck_history_id,pk,autoincrement"`
	DeckID      int64           `bun:"deck_id,notnull"`
	SellerID    string          `bun:"seller_id,notnull"`
	Name        string          `bun:"name,notnull"`
	Description string          `bun:"description,notnull,default:''"`
	TotalPrice  decimal.Decimal `bun:"total_price,type:numeric(12,2),notnull"`
	ImageURL    string          `bun:"image_url,notnull,default:''"`
	SoldAt      time.Time       `bun:"sold_at,nullzero,notnull,default:current_timestamp"`
}
