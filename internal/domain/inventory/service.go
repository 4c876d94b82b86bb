package inventory

import (
	"context"
	"log/slog"
)

// Service runs the multi-step inventory flows: deck building, purchases,
// removals and edits that move units between cards and decks.
type Service struct {
	repository Repository
	images     ImageStore
}

func NewService(repository Repository, images ImageStore) *Service {
	return &Service{
		repository: repository,
		images:     images,
	}
}

// Quantities is the batch stock lookup backing GetCardQuantity.
func (s *Service) Quantities(ctx context.Context, cardIDs []int64) (map[int64]int, error) {
	return NewLedger(s.repository).GetQuantities(ctx, cardIDs)
}

// deleteImages runs after commit. Failures never fail the request.
func (s *Service) deleteImages(ctx context.Context, urls ...string) {
	if s.images == nil {
		return
	}
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.images.Delete(ctx, url); err != nil {
			slog.Warn("Failed to delete image",
				slog.String("url", url),
				slog.String("error", err.Error()))
		}
	}
}
