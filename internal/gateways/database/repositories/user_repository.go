package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/tcgmarket/marketplace/internal/domain/profile"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(db *bun.DB) profile.Repository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user := new(models.User)
	err := r.SelectWithTimeout(ctx, "get", "user", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(user).
			Where("u.user_id = ?", userID).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindExisting(ctx context.Context, userID, email, username string) (*models.User, error) {
	user := new(models.User)
	err := r.SelectWithTimeout(ctx, "find_existing", "user", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(user).
			WhereOr("u.user_id = ?", userID).
			WhereOr("u.email = ?", email).
			WhereOr("u.username = ?", username).
			OrderExpr("u.user_id = ? DESC", userID).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	_, err := r.ExecWithTimeout(ctx, "create", "user", user.ID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(user).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
	})
	return err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := new(models.User)
	err := r.SelectWithTimeout(ctx, "get_by_username", "user", username, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(user).
			Where("u.username = ?", username).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) UpdateUsername(ctx context.Context, userID, username string) error {
	res, err := r.ExecWithTimeout(ctx, "update_username", "user", userID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.User)(nil)).
			Set("username = ?", username).
			Where("user_id = ?", userID).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	return r.RequireAffected(res, "user", userID)
}

func (r *userRepository) ListCards(ctx context.Context, userID string) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.SelectWithTimeout(ctx, "list_owned", "card", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("c.user_id = ?", userID).
			Order("c.card_id ASC").
			Scan(ctx)
	})
	return cards, err
}

func (r *userRepository) ListDecks(ctx context.Context, userID string) ([]*models.Deck, error) {
	var decks []*models.Deck
	err := r.SelectWithTimeout(ctx, "list_owned", "deck", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&decks).
			Where("d.user_id = ?", userID).
			Order("d.deck_id ASC").
			Scan(ctx)
	})
	return decks, err
}
