package profile

import (
	"context"

	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
)

//go:generate mockgen -destination=mock/repository.go -package=mock . Repository

type Repository interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	// FindExisting returns any user matching the id, email or username.
	FindExisting(ctx context.Context, userID, email, username string) (*models.User, error)
	// CreateUser inserts the user, doing nothing when a conflicting row exists.
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUsername(ctx context.Context, userID, username string) error
	ListCards(ctx context.Context, userID string) ([]*models.Card, error)
	ListDecks(ctx context.Context, userID string) ([]*models.Deck, error)
}
