package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

// Ledger owns the sellable Quantity of every card. Build one per
// transaction with the transaction's Repository.
type Ledger struct {
	repo Repository
}

func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo}
}

// Debit removes amount units, clamping at zero. A card that reaches zero with
// no deck allocations is deleted along with its favorite markers.
func (l *Ledger) Debit(ctx context.Context, cardID int64, amount int) (*DebitResult, error) {
	card, err := l.repo.LockCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return l.debitLocked(ctx, card, amount)
}

// debitLocked expects card to be locked by the current transaction.
func (l *Ledger) debitLocked(ctx context.Context, card *models.Card, amount int) (*DebitResult, error) {
	if amount < 0 {
		return nil, &apperr.ValidationError{Field: "quantity", Message: "debit amount must not be negative"}
	}

	remaining := card.Quantity - amount
	if remaining < 0 {
		remaining = 0
	}

	if remaining == 0 {
		deleted, err := l.reapLocked(ctx, card)
		if err != nil {
			return nil, err
		}
		if deleted {
			return &DebitResult{CardID: card.ID, Quantity: 0, Deleted: true}, nil
		}
	}

	if err := l.repo.SetCardQuantity(ctx, card.ID, remaining); err != nil {
		return nil, fmt.Errorf("failed to set quantity of card %d: %w", card.ID, err)
	}
	card.Quantity = remaining
	return &DebitResult{CardID: card.ID, Quantity: remaining}, nil
}

// Credit returns amount units to a card's sellable quantity.
func (l *Ledger) Credit(ctx context.Context, cardID int64, amount int) error {
	if amount < 0 {
		return &apperr.ValidationError{Field: "quantity", Message: "credit amount must not be negative"}
	}
	if amount == 0 {
		return nil
	}
	if err := l.repo.AddCardQuantity(ctx, cardID, amount); err != nil {
		return fmt.Errorf("failed to credit card %d: %w", cardID, err)
	}
	return nil
}

// GetQuantities maps each known card id to its sellable quantity. Unknown
// ids are left out.
func (l *Ledger) GetQuantities(ctx context.Context, cardIDs []int64) (map[int64]int, error) {
	ids := uniqueIDs(cardIDs)
	if len(ids) == 0 {
		return map[int64]int{}, nil
	}

	rows, err := l.repo.GetQuantities(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quantities: %w", err)
	}

	out := make(map[int64]int, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Quantity
	}
	return out, nil
}

// Reap deletes a zero-quantity card that no deck references any more.
func (l *Ledger) Reap(ctx context.Context, cardID int64) (bool, error) {
	card, err := l.repo.LockCard(ctx, cardID)
	if apperr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if card.Quantity > 0 {
		return false, nil
	}
	return l.reapLocked(ctx, card)
}

func (l *Ledger) reapLocked(ctx context.Context, card *models.Card) (bool, error) {
	allocations, err := l.repo.CountCardAllocations(ctx, card.ID)
	if err != nil {
		return false, fmt.Errorf("failed to count allocations of card %d: %w", card.ID, err)
	}
	if allocations > 0 {
		return false, nil
	}

	if err := l.repo.DeleteCardFavorites(ctx, card.ID); err != nil {
		return false, fmt.Errorf("failed to delete favorites of card %d: %w", card.ID, err)
	}
	if err := l.repo.DeleteCard(ctx, card.ID); err != nil {
		return false, fmt.Errorf("failed to delete card %d: %w", card.ID, err)
	}

	slog.Debug("Card sold out and removed",
		slog.String("type", "db"),
		slog.Int64("card_id", card.ID))
	return true, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
