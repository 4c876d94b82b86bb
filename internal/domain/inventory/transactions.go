package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

// Purchase records a sale and moves the sold units out of inventory, all in
// one transaction. Card lines are applied before deck lines. Lines that
// reference cards or decks that no longer exist are skipped.
func (s *Service) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error) {
	if err := validatePurchase(req); err != nil {
		return nil, err
	}

	var cards, decks []PurchaseItem
	for _, item := range req.Items {
		if item.CardID != nil {
			cards = append(cards, item)
		} else {
			decks = append(decks, item)
		}
	}

	result := &PurchaseResult{}
	err := s.repository.InTx(ctx, func(ctx context.Context, tx Repository) error {
		*result = PurchaseResult{}

		t := &models.Transaction{
			UserID:          req.BuyerID,
			TotalAmount:     req.TotalAmount,
			TransactionDate: time.Now().UTC(),
		}
		if err := tx.CreateTransaction(ctx, t); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		result.TransactionID = t.ID

		ledger := NewLedger(tx)
		for _, item := range cards {
			sold, err := sellCard(ctx, tx, ledger, t.ID, item)
			if err != nil {
				return err
			}
			if sold {
				result.CardsSold++
			} else {
				result.Skipped++
			}
		}
		for _, item := range decks {
			sold, err := sellDeck(ctx, tx, ledger, t.ID, item)
			if err != nil {
				return err
			}
			if sold {
				result.DecksSold++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction recorded",
		slog.Int64("transaction_id", result.TransactionID),
		slog.String("user_id", req.BuyerID),
		slog.Int("cards_sold", result.CardsSold),
		slog.Int("decks_sold", result.DecksSold),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

func validatePurchase(req PurchaseRequest) error {
	if len(req.Items) == 0 {
		return &apperr.ValidationError{Field: "items", Message: "at least one item is required"}
	}
	if !req.TotalAmount.IsPositive() {
		return &apperr.ValidationError{Field: "totalAmount", Message: "total amount must be greater than zero"}
	}
	for i, item := range req.Items {
		field := fmt.Sprintf("items[%d]", i)
		if (item.CardID == nil) == (item.DeckID == nil) {
			return &apperr.ValidationError{Field: field, Message: "exactly one of cardId or deckId is required"}
		}
		if item.CardID != nil && item.Quantity < 1 {
			return &apperr.ValidationError{Field: field, Message: "quantity must be at least 1"}
		}
		if item.Price.IsNegative() {
			return &apperr.ValidationError{Field: field, Message: "price must not be negative"}
		}
	}
	return nil
}

func sellCard(ctx context.Context, tx Repository, ledger *Ledger, transactionID int64, item PurchaseItem) (bool, error) {
	card, err := tx.LockCard(ctx, *item.CardID)
	if apperr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	history := &models.CardHistory{
		CardID:      card.ID,
		SellerID:    card.UserID,
		Name:        card.Name,
		Description: card.Description,
		Price:       card.Price,
		Quantity:    item.Quantity,
		ImageURL:    card.ImageURL,
		SoldAt:      time.Now().UTC(),
	}
	if err := tx.CreateCardHistory(ctx, history); err != nil {
		return false, fmt.Errorf("failed to snapshot card %d: %w", card.ID, err)
	}

	detail := &models.TransactionDetail{
		TransactionID: transactionID,
		CardHistoryID: &history.ID,
		Quantity:      item.Quantity,
		Price:         item.Price,
	}
	if err := tx.CreateTransactionDetail(ctx, detail); err != nil {
		return false, fmt.Errorf("failed to record sale of card %d: %w", card.ID, err)
	}

	if _, err := ledger.debitLocked(ctx, card, item.Quantity); err != nil {
		return false, err
	}
	return true, nil
}

// sellDeck removes a sold deck. Its cards are not returned to the seller;
// any that were left as zero-quantity ghosts only because of this deck are
// reaped.
func sellDeck(ctx context.Context, tx Repository, ledger *Ledger, transactionID int64, item PurchaseItem) (bool, error) {
	deck, err := tx.LockDeck(ctx, *item.DeckID)
	if apperr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	allocations, err := tx.GetDeckAllocations(ctx, deck.ID)
	if err != nil {
		return false, fmt.Errorf("failed to load allocations of deck %d: %w", deck.ID, err)
	}

	history := &models.DeckHistory{
		DeckID:      deck.ID,
		SellerID:    deck.UserID,
		Name:        deck.Name,
		Description: deck.Description,
		TotalPrice:  deck.TotalPrice,
		ImageURL:    deck.ImageURL,
		SoldAt:      time.Now().UTC(),
	}
	if err := tx.CreateDeckHistory(ctx, history); err != nil {
		return false, fmt.Errorf("failed to snapshot deck %d: %w", deck.ID, err)
	}

	detail := &models.TransactionDetail{
		TransactionID: transactionID,
		DeckHistoryID: &history.ID,
		Quantity:      1,
		Price:         item.Price,
	}
	if err := tx.CreateTransactionDetail(ctx, detail); err != nil {
		return false, fmt.Errorf("failed to record sale of deck %d: %w", deck.ID, err)
	}

	if err := tx.DeleteDeckAllocations(ctx, deck.ID); err != nil {
		return false, fmt.Errorf("failed to clear allocations of deck %d: %w", deck.ID, err)
	}
	if err := tx.DeleteDeckFavorites(ctx, deck.ID); err != nil {
		return false, fmt.Errorf("failed to clear favorites of deck %d: %w", deck.ID, err)
	}
	if err := tx.DeleteDeck(ctx, deck.ID); err != nil {
		return false, fmt.Errorf("failed to delete deck %d: %w", deck.ID, err)
	}

	for _, a := range allocations {
		if _, err := ledger.Reap(ctx, a.CardID); err != nil {
			return false, err
		}
	}
	return true, nil
}
