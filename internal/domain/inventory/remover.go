package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

// Remove deletes one card or one deck owned by the caller.
//
// Removing a deck restocks every allocated card. Removing a card disbands
// every deck that holds it, restocking the deck's other cards. Images are
// deleted once the database work has committed.
func (s *Service) Remove(ctx context.Context, req RemoveRequest) (*models.RemovalReport, error) {
	if (req.CardID == nil) == (req.DeckID == nil) {
		return nil, &apperr.ValidationError{Message: "exactly one of cardId or deckId is required"}
	}

	report := &models.RemovalReport{}
	err := s.repository.InTx(ctx, func(ctx context.Context, tx Repository) error {
		*report = models.RemovalReport{}
		if req.CardID != nil {
			return removeCard(ctx, tx, req.CallerID, *req.CardID, report)
		}
		return removeDeck(ctx, tx, req.CallerID, *req.DeckID, report)
	})
	if err != nil {
		return nil, err
	}

	s.deleteImages(ctx, report.Images...)

	slog.Info("Item removed",
		slog.String("user_id", req.CallerID),
		slog.Int64("card_id", report.CardID),
		slog.Int64("deck_id", report.DeckID),
		slog.Int("decks_disbanded", len(report.DecksDisbanded)),
		slog.Int("cards_restocked", report.CardsRestocked))

	return report, nil
}

func removeCard(ctx context.Context, tx Repository, callerID string, cardID int64, report *models.RemovalReport) error {
	card, err := tx.LockCard(ctx, cardID)
	if err != nil {
		return err
	}
	if card.UserID != callerID {
		return &apperr.AuthorizationError{Entity: "card", ID: cardID}
	}
	report.CardID = card.ID

	decks, err := tx.DecksContainingCard(ctx, card.ID)
	if err != nil {
		return fmt.Errorf("failed to find decks holding card %d: %w", card.ID, err)
	}
	ledger := NewLedger(tx)
	for _, deck := range decks {
		if err := disband(ctx, tx, ledger, deck, card.ID, report); err != nil {
			return err
		}
		report.DecksDisbanded = append(report.DecksDisbanded, deck.ID)
	}

	if err := tx.DeleteCardAllocations(ctx, card.ID); err != nil {
		return fmt.Errorf("failed to clear allocations of card %d: %w", card.ID, err)
	}
	if err := tx.DeleteCardFavorites(ctx, card.ID); err != nil {
		return fmt.Errorf("failed to clear favorites of card %d: %w", card.ID, err)
	}
	if err := tx.DeleteCard(ctx, card.ID); err != nil {
		return fmt.Errorf("failed to delete card %d: %w", card.ID, err)
	}
	report.Images = append(report.Images, card.ImageURL)
	return nil
}

func removeDeck(ctx context.Context, tx Repository, callerID string, deckID int64, report *models.RemovalReport) error {
	deck, err := tx.LockDeck(ctx, deckID)
	if err != nil {
		return err
	}
	if deck.UserID != callerID {
		return &apperr.AuthorizationError{Entity: "deck", ID: deckID}
	}
	report.DeckID = deck.ID
	return disband(ctx, tx, NewLedger(tx), deck, 0, report)
}

// disband credits every allocation of deck back to its card, except the
// card being removed, then deletes the deck.
func disband(ctx context.Context, tx Repository, ledger *Ledger, deck *models.Deck, skipCardID int64, report *models.RemovalReport) error {
	allocations, err := tx.GetDeckAllocations(ctx, deck.ID)
	if err != nil {
		return fmt.Errorf("failed to load allocations of deck %d: %w", deck.ID, err)
	}
	for _, a := range allocations {
		if a.CardID == skipCardID {
			continue
		}
		if err := ledger.Credit(ctx, a.CardID, a.Quantity); err != nil {
			return err
		}
		report.CardsRestocked++
	}

	if err := tx.DeleteDeckAllocations(ctx, deck.ID); err != nil {
		return fmt.Errorf("failed to clear allocations of deck %d: %w", deck.ID, err)
	}
	if err := tx.DeleteDeckFavorites(ctx, deck.ID); err != nil {
		return fmt.Errorf("failed to clear favorites of deck %d: %w", deck.ID, err)
	}
	if err := tx.DeleteDeck(ctx, deck.ID); err != nil {
		return fmt.Errorf("failed to delete deck %d: %w", deck.ID, err)
	}
	report.Images = append(report.Images, deck.ImageURL)
	return nil
}
