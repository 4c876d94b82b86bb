package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

var errCardMissing = errors.New("card missing")

// BuildDeck creates a deck and allocates the requested cards into it.
//
// The deck row is committed first and every line item commits on its own.
// When a line asks for more than the card has, BuildDeck stops and returns
// the conflict together with a result describing the deck as it was left:
// earlier allocations stay in place.
func (s *Service) BuildDeck(ctx context.Context, req DeckRequest) (*DeckResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &apperr.ValidationError{Field: "name", Message: "deck name is required"}
	}
	if len(req.Cards) == 0 {
		return nil, &apperr.ValidationError{Field: "cards", Message: "at least one card is required"}
	}

	deck := &models.Deck{
		UserID:      req.OwnerID,
		Name:        name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		TotalPrice:  decimal.Zero,
	}
	if err := s.repository.CreateDeck(ctx, deck); err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	result := &DeckResult{DeckID: deck.ID, TotalPrice: decimal.Zero}
	for _, item := range req.Cards {
		if item.Quantity < 1 {
			continue
		}

		var total decimal.Decimal
		err := s.repository.InTx(ctx, func(ctx context.Context, tx Repository) error {
			card, err := tx.LockCard(ctx, item.CardID)
			if apperr.IsNotFound(err) {
				return errCardMissing
			}
			if err != nil {
				return err
			}
			if item.Quantity > card.Quantity {
				return apperr.InsufficientStock(card.ID, card.Quantity, item.Quantity)
			}

			// allocate before debiting so a card emptied into the deck survives as a ghost row
			if err := tx.AddAllocation(ctx, deck.ID, card.ID, item.Quantity); err != nil {
				return fmt.Errorf("failed to allocate card %d: %w", card.ID, err)
			}
			if _, err := NewLedger(tx).debitLocked(ctx, card, item.Quantity); err != nil {
				return err
			}

			total = result.TotalPrice.Add(card.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			return tx.SetDeckTotal(ctx, deck.ID, total)
		})

		if errors.Is(err, errCardMissing) {
			slog.Debug("Skipping unknown card in deck request",
				slog.Int64("deck_id", deck.ID),
				slog.Int64("card_id", item.CardID))
			result.Skipped = append(result.Skipped, item.CardID)
			continue
		}
		if err != nil {
			slog.Warn("Deck build stopped",
				slog.Int64("deck_id", deck.ID),
				slog.Int64("card_id", item.CardID),
				slog.String("error", err.Error()))
			return result, err
		}

		result.TotalPrice = total
		result.Allocated = append(result.Allocated, item)
	}

	slog.Info("Deck created",
		slog.Int64("deck_id", deck.ID),
		slog.String("user_id", req.OwnerID),
		slog.Int("cards", len(result.Allocated)),
		slog.String("total_price", result.TotalPrice.StringFixed(2)))

	return result, nil
}
