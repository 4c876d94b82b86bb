package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/tcgmarket/marketplace/internal/domain/catalog"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type catalogRepository struct {
	BaseRepository
}

func NewCatalogRepository(db *bun.DB) catalog.Repository {
	return &catalogRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *catalogRepository) CreateCard(ctx context.Context, card *models.Card) error {
	now := time.Now()
	card.CreatedAt = now
	card.UpdatedAt = now
	_, err := r.ExecWithTimeout(ctx, "create", "card", card.Name, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(card).
			Returning("card_id").
			Exec(ctx)
	})
	return err
}

func (r *catalogRepository) GetCard(ctx context.Context, cardID int64) (*models.Card, error) {
	card := new(models.Card)
	err := r.SelectWithTimeout(ctx, "get", "card", cardID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(card).
			Where("c.card_id = ?", cardID).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *catalogRepository) ListSellableCards(ctx context.Context, userID string) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.SelectWithTimeout(ctx, "list_sellable", "card", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("c.user_id = ?", userID).
			Where("c.quantity > 0").
			Order("c.card_id ASC").
			Scan(ctx)
	})
	return cards, err
}

func (r *catalogRepository) ListSearchableCards(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.SelectWithTimeout(ctx, "list_searchable", "card", "all", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("c.quantity > 0").
			Order("c.card_id ASC").
			Scan(ctx)
	})
	return cards, err
}

func (r *catalogRepository) GetDeck(ctx context.Context, deckID int64) (*models.Deck, error) {
	deck := new(models.Deck)
	err := r.SelectWithTimeout(ctx, "get", "deck", deckID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(deck).
			Where("d.deck_id = ?", deckID).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return deck, nil
}

func (r *catalogRepository) ListDecks(ctx context.Context, excludeOwner string) ([]*models.Deck, error) {
	var decks []*models.Deck
	err := r.SelectWithTimeout(ctx, "list", "deck", excludeOwner, func(ctx context.Context) error {
		q := r.db.NewSelect().
			Model(&decks).
			Order("d.created_at DESC")
		if excludeOwner != "" {
			q = q.Where("d.user_id <> ?", excludeOwner)
		}
		return q.Scan(ctx)
	})
	return decks, err
}

func (r *catalogRepository) GetDeckCards(ctx context.Context, deckID int64) ([]*models.AllocatedCard, error) {
	var cards []*models.AllocatedCard
	err := r.SelectWithTimeout(ctx, "get_cards", "deck", deckID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			ColumnExpr("c.*").
			ColumnExpr("dc.quantity AS deck_quantity").
			Join("JOIN deck_cards AS dc ON dc.card_id = c.card_id").
			Where("dc.deck_id = ?", deckID).
			Order("c.card_id ASC").
			Scan(ctx)
	})
	return cards, err
}

func (r *catalogRepository) ToggleCardFavorite(ctx context.Context, userID string, cardID int64) (bool, error) {
	return r.toggle(ctx, "card", cardID,
		r.db.NewDelete().
			Model((*models.Favorite)(nil)).
			Where("user_id = ? AND card_id = ?", userID, cardID),
		r.db.NewInsert().
			Model(&models.Favorite{UserID: userID, CardID: cardID, CreatedAt: time.Now()}).
			On("CONFLICT DO NOTHING"),
	)
}

func (r *catalogRepository) ToggleDeckFavorite(ctx context.Context, userID string, deckID int64) (bool, error) {
	return r.toggle(ctx, "deck", deckID,
		r.db.NewDelete().
			Model((*models.FavoriteDeck)(nil)).
			Where("user_id = ? AND deck_id = ?", userID, deckID),
		r.db.NewInsert().
			Model(&models.FavoriteDeck{UserID: userID, DeckID: deckID, CreatedAt: time.Now()}).
			On("CONFLICT DO NOTHING"),
	)
}

func (r *catalogRepository) toggle(ctx context.Context, entity string, id int64, remove *bun.DeleteQuery, add *bun.InsertQuery) (bool, error) {
	res, err := r.ExecWithTimeout(ctx, "unfavorite", entity, id, func(ctx context.Context) (sql.Result, error) {
		return remove.Exec(ctx)
	})
	if err != nil {
		return false, err
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		return false, nil
	}

	_, err = r.ExecWithTimeout(ctx, "favorite", entity, id, func(ctx context.Context) (sql.Result, error) {
		return add.Exec(ctx)
	})
	return err == nil, err
}

func (r *catalogRepository) FavoriteCards(ctx context.Context, userID string) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.SelectWithTimeout(ctx, "favorites", "card", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Join("JOIN favorites AS f ON f.card_id = c.card_id").
			Where("f.user_id = ?", userID).
			Order("f.created_at DESC").
			Scan(ctx)
	})
	return cards, err
}

func (r *catalogRepository) FavoriteDecks(ctx context.Context, userID string) ([]*models.Deck, error) {
	var decks []*models.Deck
	err := r.SelectWithTimeout(ctx, "favorites", "deck", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&decks).
			Join("JOIN favorites_decks AS fd ON fd.deck_id = d.deck_id").
			Where("fd.user_id = ?", userID).
			Order("fd.created_at DESC").
			Scan(ctx)
	})
	return decks, err
}

func (r *catalogRepository) ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	err := r.SelectWithTimeout(ctx, "list", "transaction", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&transactions).
			Relation("Details", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("td.detail_id ASC")
			}).
			Relation("Details.CardHistory").
			Relation("Details.DeckHistory").
			Where("t.user_id = ?", userID).
			Order("t.transaction_date DESC", "t.transaction_id DESC").
			Scan(ctx)
	})
	return transactions, err
}
