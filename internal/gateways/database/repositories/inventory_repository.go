package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type inventoryRepository struct {
	BaseRepository
	txm *TransactionManager
}

func NewInventoryRepository(db *bun.DB) inventory.Repository {
	return &inventoryRepository{
		BaseRepository: NewBaseRepository(db),
		txm:            NewTransactionManager(db),
	}
}

func (r *inventoryRepository) InTx(ctx context.Context, fn func(context.Context, inventory.Repository) error) error {
	if _, ok := r.db.(bun.Tx); ok {
		return fn(ctx, r)
	}
	return r.txm.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &inventoryRepository{
			BaseRepository: NewBaseRepository(tx),
			txm:            r.txm,
		})
	})
}

func (r *inventoryRepository) LockCard(ctx context.Context, cardID int64) (*models.Card, error) {
	card := new(models.Card)
	err := r.SelectWithTimeout(ctx, "lock", "card", cardID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(card).
			Where("c.card_id = ?", cardID).
			For("UPDATE").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *inventoryRepository) GetQuantities(ctx context.Context, cardIDs []int64) ([]*models.CardQuantity, error) {
	var rows []*models.CardQuantity
	err := r.SelectWithTimeout(ctx, "get_quantities", "card", cardIDs, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&rows).
			Column("card_id", "quantity").
			Where("card_id IN (?)", bun.In(cardIDs)).
			Scan(ctx)
	})
	return rows, err
}

func (r *inventoryRepository) SetCardQuantity(ctx context.Context, cardID int64, quantity int) error {
	return r.updateCardQuantity(ctx, "set_quantity", cardID, "quantity = ?", quantity)
}

func (r *inventoryRepository) AddCardQuantity(ctx context.Context, cardID int64, delta int) error {
	return r.updateCardQuantity(ctx, "add_quantity", cardID, "quantity = quantity + ?", delta)
}

func (r *inventoryRepository) updateCardQuantity(ctx context.Context, operation string, cardID int64, set string, value int) error {
	res, err := r.ExecWithTimeout(ctx, operation, "card", cardID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.Card)(nil)).
			Set(set, value).
			Set("updated_at = ?", time.Now()).
			Where("card_id = ?", cardID).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	return r.RequireAffected(res, "card", cardID)
}

func (r *inventoryRepository) UpdateCard(ctx context.Context, card *models.Card, columns []string) error {
	card.UpdatedAt = time.Now()
	columns = append(columns, "updated_at")
	res, err := r.ExecWithTimeout(ctx, "update", "card", card.ID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model(card).
			Column(columns...).
			WherePK().
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	return r.RequireAffected(res, "card", card.ID)
}

func (r *inventoryRepository) DeleteCard(ctx context.Context, cardID int64) error {
	_, err := r.ExecWithTimeout(ctx, "delete", "card", cardID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.Card)(nil)).
			Where("card_id = ?", cardID).
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) DeleteCardFavorites(ctx context.Context, cardID int64) error {
	_, err := r.ExecWithTimeout(ctx, "delete_favorites", "card", cardID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.Favorite)(nil)).
			Where("card_id = ?", cardID).
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) CountCardAllocations(ctx context.Context, cardID int64) (int, error) {
	var count int
	err := r.SelectWithTimeout(ctx, "count_allocations", "card", cardID, func(ctx context.Context) error {
		var err error
		count, err = r.db.NewSelect().
			Model((*models.DeckCard)(nil)).
			Where("card_id = ?", cardID).
			Count(ctx)
		return err
	})
	return count, err
}

func (r *inventoryRepository) DeleteCardAllocations(ctx context.Context, cardID int64) error {
	_, err := r.ExecWithTimeout(ctx, "delete_allocations", "card", cardID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.DeckCard)(nil)).
			Where("card_id = ?", cardID).
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) CreateDeck(ctx context.Context, deck *models.Deck) error {
	now := time.Now()
	deck.CreatedAt = now
	deck.UpdatedAt = now
	_, err := r.ExecWithTimeout(ctx, "create", "deck", deck.Name, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(deck).
			Returning("deck_id").
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) LockDeck(ctx context.Context, deckID int64) (*models.Deck, error) {
	deck := new(models.Deck)
	err := r.SelectWithTimeout(ctx, "lock", "deck", deckID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(deck).
			Where("d.deck_id = ?", deckID).
			For("UPDATE").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return deck, nil
}

func (r *inventoryRepository) UpdateDeck(ctx context.Context, deck *models.Deck, columns []string) error {
	deck.UpdatedAt = time.Now()
	columns = append(columns, "updated_at")
	res, err := r.ExecWithTimeout(ctx, "update", "deck", deck.ID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model(deck).
			Column(columns...).
			WherePK().
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	return r.RequireAffected(res, "deck", deck.ID)
}

func (r *inventoryRepository) SetDeckTotal(ctx context.Context, deckID int64, total decimal.Decimal) error {
	res, err := r.ExecWithTimeout(ctx, "set_total", "deck", deckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.Deck)(nil)).
			Set("total_price = ?", total).
			Set("updated_at = ?", time.Now()).
			Where("deck_id = ?", deckID).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	return r.RequireAffected(res, "deck", deckID)
}

// RecomputeDeckTotal sets the deck total to SUM(price x allocation) over its
// current allocations and returns it.
func (r *inventoryRepository) RecomputeDeckTotal(ctx context.Context, deckID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.SelectWithTimeout(ctx, "sum_total", "deck", deckID, func(ctx context.Context) error {
		return r.db.NewSelect().
			TableExpr("deck_cards AS dc").
			ColumnExpr("COALESCE(SUM(c.price * dc.quantity), 0)").
			Join("JOIN cards AS c ON c.card_id = dc.card_id").
			Where("dc.deck_id = ?", deckID).
			Scan(ctx, &total)
	})
	if err != nil {
		return decimal.Zero, err
	}
	if err := r.SetDeckTotal(ctx, deckID, total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *inventoryRepository) DeleteDeck(ctx context.Context, deckID int64) error {
	_, err := r.ExecWithTimeout(ctx, "delete", "deck", deckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.Deck)(nil)).
			Where("deck_id = ?", deckID).
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) DeleteDeckFavorites(ctx context.Context, deckID int64) error {
	_, err := r.ExecWithTimeout(ctx, "delete_favorites", "deck", deckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.FavoriteDeck)(nil)).
			Where("deck_id = ?", deckID).
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) DecksContainingCard(ctx context.Context, cardID int64) ([]*models.Deck, error) {
	var decks []*models.Deck
	err := r.SelectWithTimeout(ctx, "decks_containing", "deck", cardID, func(ctx context.Context) error {
		sub := r.db.NewSelect().
			Model((*models.DeckCard)(nil)).
			Column("deck_id").
			Where("card_id = ?", cardID)
		return r.db.NewSelect().
			Model(&decks).
			Where("d.deck_id IN (?)", sub).
			Order("d.deck_id ASC").
			For("UPDATE").
			Scan(ctx)
	})
	return decks, err
}

func (r *inventoryRepository) GetDeckAllocations(ctx context.Context, deckID int64) ([]*models.DeckCard, error) {
	var rows []*models.DeckCard
	err := r.SelectWithTimeout(ctx, "get_allocations", "deck", deckID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&rows).
			Where("deck_id = ?", deckID).
			Order("card_id ASC").
			Scan(ctx)
	})
	return rows, err
}

// AddAllocation inserts the allocation or increases an existing one.
func (r *inventoryRepository) AddAllocation(ctx context.Context, deckID, cardID int64, quantity int) error {
	_, err := r.ExecWithTimeout(ctx, "add_allocation", "deck", deckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(&models.DeckCard{DeckID: deckID, CardID: cardID, Quantity: quantity}).
			On("CONFLICT (deck_id, card_id) DO UPDATE").
			Set("quantity = dc.quantity + EXCLUDED.quantity").
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) SetAllocation(ctx context.Context, deckID, cardID int64, quantity int) error {
	res, err := r.ExecWithTimeout(ctx, "set_allocation", "deck", deckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.DeckCard)(nil)).
			Set("quantity = ?", quantity).
			Where("deck_id = ? AND card_id = ?", deckID, cardID).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	return r.RequireAffected(res, "allocation", cardID)
}

func (r *inventoryRepository) DeleteAllocation(ctx context.Context, deckID, cardID int64) error {
	_, err := r.ExecWithTimeout(ctx, "delete_allocation", "deck", deckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.DeckCard)(nil)).
			Where("deck_id = ? AND card_id = ?", deckID, cardID).
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) DeleteDeckAllocations(ctx context.Context, deckID int64) error {
	_, err := r.ExecWithTimeout(ctx, "delete_allocations", "deck", deckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.DeckCard)(nil)).
			Where("deck_id = ?", deckID).
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	_, err := r.ExecWithTimeout(ctx, "create", "transaction", t.UserID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(t).
			Returning("transaction_id").
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) CreateCardHistory(ctx context.Context, h *models.CardHistory) error {
	_, err := r.ExecWithTimeout(ctx, "create", "card_history", h.CardID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(h).
			Returning("card_history_id").
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) CreateDeckHistory(ctx context.Context, h *models.DeckHistory) error {
	_, err := r.ExecWithTimeout(ctx, "create", "deck_history", h.DeckID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(h).
			Returning("deck_history_id").
			Exec(ctx)
	})
	return err
}

func (r *inventoryRepository) CreateTransactionDetail(ctx context.Context, d *models.TransactionDetail) error {
	_, err := r.ExecWithTimeout(ctx, "create", "transaction_detail", d.TransactionID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(d).
			Returning("detail_id").
			Exec(ctx)
	})
	return err
}
