package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
)

// UpdateCard applies patch to a card owned by callerID. A price change
// reprices every deck holding the card. A replaced image is deleted after
// commit.
func (s *Service) UpdateCard(ctx context.Context, callerID string, cardID int64, patch CardPatch) (*CardUpdateResult, error) {
	if err := validateCardPatch(patch); err != nil {
		return nil, err
	}

	var (
		result   *CardUpdateResult
		oldImage string
	)
	err := s.repository.InTx(ctx, func(ctx context.Context, tx Repository) error {
		oldImage = ""
		card, err := tx.LockCard(ctx, cardID)
		if err != nil {
			return err
		}
		if card.UserID != callerID {
			return &apperr.AuthorizationError{Entity: "card", ID: cardID}
		}

		var columns []string
		if patch.Name != nil {
			card.Name = strings.TrimSpace(*patch.Name)
			columns = append(columns, "name")
		}
		if patch.Description != nil {
			card.Description = *patch.Description
			columns = append(columns, "description")
		}
		repriced := false
		if patch.Price != nil && !patch.Price.Equal(card.Price) {
			card.Price = *patch.Price
			columns = append(columns, "price")
			repriced = true
		}
		if patch.Quantity != nil {
			card.Quantity = *patch.Quantity
			columns = append(columns, "quantity")
		}
		if patch.ImageURL != nil && *patch.ImageURL != card.ImageURL {
			oldImage = card.ImageURL
			card.ImageURL = *patch.ImageURL
			columns = append(columns, "image_url")
		}

		result = &CardUpdateResult{Card: card}
		if len(columns) == 0 {
			return nil
		}
		if err := tx.UpdateCard(ctx, card, columns); err != nil {
			return fmt.Errorf("failed to update card %d: %w", card.ID, err)
		}

		if !repriced {
			return nil
		}
		decks, err := tx.DecksContainingCard(ctx, card.ID)
		if err != nil {
			return fmt.Errorf("failed to find decks holding card %d: %w", card.ID, err)
		}
		for _, deck := range decks {
			if _, err := tx.RecomputeDeckTotal(ctx, deck.ID); err != nil {
				return fmt.Errorf("failed to reprice deck %d: %w", deck.ID, err)
			}
			result.DecksRepriced++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deleteImages(ctx, oldImage)
	return result, nil
}

func validateCardPatch(patch CardPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return &apperr.ValidationError{Field: "name", Message: "name must not be empty"}
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return &apperr.ValidationError{Field: "price", Message: "price must not be negative"}
	}
	if patch.Quantity != nil && *patch.Quantity < 1 {
		return &apperr.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}
	return nil
}

// UpdateDeck applies patch to a deck owned by callerID. When patch.Cards is
// set the deck's allocations are moved to match it: dropped or reduced cards
// are restocked, added or increased cards are debited and must have enough
// stock. The deck total is recomputed afterwards.
func (s *Service) UpdateDeck(ctx context.Context, callerID string, deckID int64, patch DeckPatch) (*DeckUpdateResult, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, &apperr.ValidationError{Field: "name", Message: "name must not be empty"}
	}

	var (
		result   *DeckUpdateResult
		oldImage string
	)
	err := s.repository.InTx(ctx, func(ctx context.Context, tx Repository) error {
		oldImage = ""
		deck, err := tx.LockDeck(ctx, deckID)
		if err != nil {
			return err
		}
		if deck.UserID != callerID {
			return &apperr.AuthorizationError{Entity: "deck", ID: deckID}
		}

		if patch.Cards != nil {
			if err := reallocate(ctx, tx, deck.ID, *patch.Cards); err != nil {
				return err
			}
		}

		total, err := tx.RecomputeDeckTotal(ctx, deck.ID)
		if err != nil {
			return fmt.Errorf("failed to reprice deck %d: %w", deck.ID, err)
		}
		deck.TotalPrice = total

		var columns []string
		if patch.Name != nil {
			deck.Name = strings.TrimSpace(*patch.Name)
			columns = append(columns, "name")
		}
		if patch.Description != nil {
			deck.Description = *patch.Description
			columns = append(columns, "description")
		}
		if patch.ImageURL != nil && *patch.ImageURL != deck.ImageURL {
			oldImage = deck.ImageURL
			deck.ImageURL = *patch.ImageURL
			columns = append(columns, "image_url")
		}
		if len(columns) > 0 {
			if err := tx.UpdateDeck(ctx, deck, columns); err != nil {
				return fmt.Errorf("failed to update deck %d: %w", deck.ID, err)
			}
		}

		result = &DeckUpdateResult{Deck: deck}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deleteImages(ctx, oldImage)
	return result, nil
}

// reallocate moves the deck's allocations to the desired composition.
// Entries with quantity below one drop the card; repeated ids are summed.
func reallocate(ctx context.Context, tx Repository, deckID int64, desired []CardRequest) error {
	want := make(map[int64]int, len(desired))
	for _, item := range desired {
		if item.Quantity < 1 {
			continue
		}
		want[item.CardID] += item.Quantity
	}

	current, err := tx.GetDeckAllocations(ctx, deckID)
	if err != nil {
		return fmt.Errorf("failed to load allocations of deck %d: %w", deckID, err)
	}
	have := make(map[int64]int, len(current))
	for _, a := range current {
		have[a.CardID] = a.Quantity
	}

	ledger := NewLedger(tx)

	for _, cardID := range sortedKeys(have) {
		if _, keep := want[cardID]; keep {
			continue
		}
		if err := tx.DeleteAllocation(ctx, deckID, cardID); err != nil {
			return fmt.Errorf("failed to drop card %d from deck %d: %w", cardID, deckID, err)
		}
		if err := ledger.Credit(ctx, cardID, have[cardID]); err != nil {
			return err
		}
	}

	for _, cardID := range sortedKeys(want) {
		target, held := want[cardID], have[cardID]
		diff := target - held
		switch {
		case diff == 0:
			continue
		case diff < 0:
			if err := tx.SetAllocation(ctx, deckID, cardID, target); err != nil {
				return fmt.Errorf("failed to reduce card %d in deck %d: %w", cardID, deckID, err)
			}
			if err := ledger.Credit(ctx, cardID, -diff); err != nil {
				return err
			}
		default:
			card, err := tx.LockCard(ctx, cardID)
			if err != nil {
				return err
			}
			if diff > card.Quantity {
				return apperr.InsufficientStock(cardID, card.Quantity, diff)
			}
			if held == 0 {
				err = tx.AddAllocation(ctx, deckID, cardID, target)
			} else {
				err = tx.SetAllocation(ctx, deckID, cardID, target)
			}
			if err != nil {
				return fmt.Errorf("failed to allocate card %d to deck %d: %w", cardID, deckID, err)
			}
			if _, err := ledger.debitLocked(ctx, card, diff); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[int64]int) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
