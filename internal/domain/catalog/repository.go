package catalog

import (
	"context"

	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

//go:generate mockgen -destination=mock/repository.go -package=mock . Repository

type Repository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	GetCard(ctx context.Context, cardID int64) (*models.Card, error)
	// ListSellableCards returns the user's cards with quantity above zero.
	ListSellableCards(ctx context.Context, userID string) ([]*models.Card, error)
	// ListSearchableCards returns every card with quantity above zero.
	ListSearchableCards(ctx context.Context) ([]*models.Card, error)

	GetDeck(ctx context.Context, deckID int64) (*models.Deck, error)
	// ListDecks returns all decks except those owned by excludeOwner.
	ListDecks(ctx context.Context, excludeOwner string) ([]*models.Deck, error)
	GetDeckCards(ctx context.Context, deckID int64) ([]*models.AllocatedCard, error)

	// ToggleCardFavorite removes the favorite if present, otherwise adds it.
	// It reports whether the favorite was added.
	ToggleCardFavorite(ctx context.Context, userID string, cardID int64) (bool, error)
	ToggleDeckFavorite(ctx context.Context, userID string, deckID int64) (bool, error)
	FavoriteCards(ctx context.Context, userID string) ([]*models.Card, error)
	FavoriteDecks(ctx context.Context, userID string) ([]*models.Deck, error)

	// ListTransactions returns the buyer's transactions newest first, with
	// details and the sold snapshots loaded.
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
}

// ImageStore stores card and deck images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, folder string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}
