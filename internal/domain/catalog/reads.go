package catalog

import (
	"context"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"golang.org/x/sync/errgroup"
)

// ListDecks returns the decks on sale to callerID, which excludes their own.
func (s *Service) ListDecks(ctx context.Context, callerID string) ([]*models.Deck, error) {
	decks, err := s.repository.ListDecks(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if decks == nil {
		decks = []*models.Deck{}
	}
	return decks, nil
}

func (s *Service) GetCard(ctx context.Context, cardID int64) (*models.Card, error) {
	return s.repository.GetCard(ctx, cardID)
}

// GetDeck returns the deck together with its allocated cards.
func (s *Service) GetDeck(ctx context.Context, deckID int64) (*DeckDetail, error) {
	detail := &DeckDetail{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deck, err := s.repository.GetDeck(gctx, deckID)
		detail.Deck = deck
		return err
	})
	g.Go(func() error {
		cards, err := s.repository.GetDeckCards(gctx, deckID)
		detail.Cards = cards
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if detail.Cards == nil {
		detail.Cards = []*models.AllocatedCard{}
	}
	return detail, nil
}

// GetDeckCards returns the cards allocated to a deck. A deck without cards
// is reported as not found.
func (s *Service) GetDeckCards(ctx context.Context, deckID int64) ([]*models.AllocatedCard, error) {
	cards, err := s.repository.GetDeckCards(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, &apperr.NotFoundError{Entity: "deck cards", ID: deckID}
	}
	return cards, nil
}

func (s *Service) GetFavorites(ctx context.Context, userID string) (*Favorites, error) {
	favorites := &Favorites{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cards, err := s.repository.FavoriteCards(gctx, userID)
		favorites.Cards = cards
		return err
	})
	g.Go(func() error {
		decks, err := s.repository.FavoriteDecks(gctx, userID)
		favorites.Decks = decks
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if favorites.Cards == nil {
		favorites.Cards = []*models.Card{}
	}
	if favorites.Decks == nil {
		favorites.Decks = []*models.Deck{}
	}
	return favorites, nil
}

// ListTransactions returns the buyer's purchases, newest first.
func (s *Service) ListTransactions(ctx context.Context, userID string) ([]TransactionView, error) {
	transactions, err := s.repository.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, newTransactionView(t))
	}
	return views, nil
}

// ListUserCards returns the caller's cards that still have sellable stock.
func (s *Service) ListUserCards(ctx context.Context, userID string) ([]*models.Card, error) {
	cards, err := s.repository.ListSellableCards(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*models.Card{}
	}
	return cards, nil
}
