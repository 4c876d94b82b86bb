// Package catalog covers listing cards, favorites and the read side of the
// marketplace.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/tcgmarket/marketplace/marketplace/config"
)

type Service struct {
	repository      Repository
	images          ImageStore
	defaultImageURL string
}

func NewService(repository Repository, images ImageStore, defaultImageURL string) *Service {
	return &Service{
		repository:      repository,
		images:          images,
		defaultImageURL: defaultImageURL,
	}
}

// AddCard lists a new card. Without an image the card gets the default image.
func (s *Service) AddCard(ctx context.Context, req NewCard) (*models.Card, error) {
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return nil, &apperr.ValidationError{Field: "name", Message: "name is required"}
	case req.Price.IsNegative():
		return nil, &apperr.ValidationError{Field: "price", Message: "price must not be negative"}
	case req.Quantity < 1:
		return nil, &apperr.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}

	imageURL, err := s.StoreImage(ctx, config.CardImageFolder, req.Image)
	if err != nil {
		return nil, err
	}
	uploaded := imageURL != ""
	if !uploaded {
		imageURL = s.defaultImageURL
	}

	card := &models.Card{
		UserID:      req.OwnerID,
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    imageURL,
	}
	if err := s.repository.CreateCard(ctx, card); err != nil {
		if uploaded {
			s.DiscardImage(ctx, imageURL)
		}
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	slog.Info("Card listed",
		slog.Int64("card_id", card.ID),
		slog.String("user_id", card.UserID),
		slog.Int("quantity", card.Quantity))
	return card, nil
}

// ToggleFavorite flips the caller's favorite on exactly one of a card or a
// deck and reports whether it is now a favorite.
func (s *Service) ToggleFavorite(ctx context.Context, userID string, cardID, deckID *int64) (bool, error) {
	if (cardID == nil) == (deckID == nil) {
		return false, &apperr.ValidationError{Message: "exactly one of cardId or deckId is required"}
	}

	if cardID != nil {
		if _, err := s.repository.GetCard(ctx, *cardID); err != nil {
			return false, err
		}
		return s.repository.ToggleCardFavorite(ctx, userID, *cardID)
	}

	if _, err := s.repository.GetDeck(ctx, *deckID); err != nil {
		return false, err
	}
	return s.repository.ToggleDeckFavorite(ctx, userID, *deckID)
}
