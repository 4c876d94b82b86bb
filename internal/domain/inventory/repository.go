package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

//go:generate mockgen -destination=mock/repository.go -package=mock . Repository

// Repository is the storage surface of the inventory protocol. Every method
// is a single statement; multi-statement work goes through InTx.
type Repository interface {
	// InTx runs fn with a Repository bound to one database transaction.
	// Calling InTx on an already transactional Repository reuses it.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	LockCard(ctx context.Context, cardID int64) (*models.Card, error)
	GetQuantities(ctx context.Context, cardIDs []int64) ([]*models.CardQuantity, error)
	SetCardQuantity(ctx context.Context, cardID int64, quantity int) error
	AddCardQuantity(ctx context.Context, cardID int64, delta int) error
	UpdateCard(ctx context.Context, card *models.Card, columns []string) error
	DeleteCard(ctx context.Context, cardID int64) error
	DeleteCardFavorites(ctx context.Context, cardID int64) error
	CountCardAllocations(ctx context.Context, cardID int64) (int, error)
	DeleteCardAllocations(ctx context.Context, cardID int64) error

	CreateDeck(ctx context.Context, deck *models.Deck) error
	LockDeck(ctx context.Context, deckID int64) (*models.Deck, error)
	UpdateDeck(ctx context.Context, deck *models.Deck, columns []string) error
	SetDeckTotal(ctx context.Context, deckID int64, total decimal.Decimal) error
	RecomputeDeckTotal(ctx context.Context, deckID int64) (decimal.Decimal, error)
	DeleteDeck(ctx context.Context, deckID int64) error
	DeleteDeckFavorites(ctx context.Context, deckID int64) error
	DecksContainingCard(ctx context.Context, cardID int64) ([]*models.Deck, error)

	GetDeckAllocations(ctx context.Context, deckID int64) ([]*models.DeckCard, error)
	AddAllocation(ctx context.Context, deckID, cardID int64, quantity int) error
	SetAllocation(ctx context.Context, deckID, cardID int64, quantity int) error
	DeleteAllocation(ctx context.Context, deckID, cardID int64) error
	DeleteDeckAllocations(ctx context.Context, deckID int64) error

	CreateTransaction(ctx context.Context, t *models.Transaction) error
	CreateCardHistory(ctx context.Context, h *models.CardHistory) error
	CreateDeckHistory(ctx context.Context, h *models.DeckHistory) error
	CreateTransactionDetail(ctx context.Context, d *models.TransactionDetail) error
}

// ImageStore deletes stored images by their public URL.
type ImageStore interface {
	Delete(ctx context.Context, url string) error
}
