package catalog

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/tcgmarket/marketplace/marketplace/config"
)

// cardNames implements fuzzy.Source over card names.
type cardNames []*models.Card

func (c cardNames) Len() int {
	return len(c)
}

func (c cardNames) String(i int) string {
	return strings.ToLower(c[i].Name)
}

// SearchCards fuzzy-matches query against the names of cards in stock,
// best matches first.
func (s *Service) SearchCards(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, &apperr.ValidationError{Field: "q", Message: "search query is required"}
	}
	if limit <= 0 || limit > config.MaxSearchResults {
		limit = config.MaxSearchResults
	}

	ctx, cancel := context.WithTimeout(ctx, config.SearchTimeout)
	defer cancel()

	cards, err := s.repository.ListSearchableCards(ctx)
	if err != nil {
		return nil, err
	}

	source := cardNames(cards)
	matches := fuzzy.FindFrom(query, source)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]*models.Card, len(matches))
	for i, match := range matches {
		results[i] = source[match.Index]
	}
	return results, nil
}
