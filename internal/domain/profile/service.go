// Package profile manages marketplace users: first-login provisioning,
// username changes and the profile view.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/domain/identity"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/tcgmarket/marketplace/marketplace/config"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Profile is the signed-in user's view of themselves.
type Profile struct {
	User  *models.User   `json:"user"`
	Cards []*models.Card `json:"cards"`
	Decks []*models.Deck `json:"decks"`
}

// Login provisions a user for verified claims. Nothing is inserted when a
// user with the same id, email or username exists, so repeated logins are
// no-ops.
func (s *Service) Login(ctx context.Context, claims *identity.Claims) (*models.User, error) {
	user := NewUser(claims)

	existing, err := s.repository.FindExisting(ctx, user.ID, user.Email, user.Username)
	switch {
	case err == nil && existing.ID == user.ID:
		return existing, nil
	case err == nil:
		slog.Warn("Login matches another user's email or username",
			slog.String("type", "auth"),
			slog.String("user_id", user.ID),
			slog.String("existing_user_id", existing.ID))
		return user, nil
	case !apperr.IsNotFound(err):
		return nil, fmt.Errorf("failed to look up user %s: %w", user.ID, err)
	}

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}

	// the insert is a no-op when a concurrent login got there first
	created, err := s.repository.GetUser(ctx, user.ID)
	if apperr.IsNotFound(err) {
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", user.ID, err)
	}

	slog.Info("User provisioned",
		slog.String("type", "auth"),
		slog.String("user_id", created.ID),
		slog.String("username", created.Username))
	return created, nil
}

// NewUser builds the row inserted on first login.
func NewUser(claims *identity.Claims) *models.User {
	username := claims.PreferredUsername
	if username == "" {
		username = claims.Email
	}
	if username == "" {
		username = config.DefaultUsername
	}

	email := claims.Email
	if email == "" {
		email = config.DefaultEmail
	}

	return &models.User{
		ID:       claims.UserID(),
		Username: username,
		Email:    email,
		Name:     claims.DisplayName(),
	}
}

// UpdateUsername renames a user. Keeping one's own name is allowed.
func (s *Service) UpdateUsername(ctx context.Context, userID, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", &apperr.ValidationError{Field: "username", Message: "username must not be empty"}
	}
	if utf8.RuneCountInString(username) > config.MaxUsernameLength {
		return "", &apperr.ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("username must be at most %d characters", config.MaxUsernameLength),
		}
	}

	if _, err := s.repository.GetUser(ctx, userID); err != nil {
		return "", err
	}

	holder, err := s.repository.GetByUsername(ctx, username)
	switch {
	case err == nil && holder.ID != userID:
		return "", &apperr.ConflictError{Entity: "user", Field: "username", Value: username, Message: "username is already taken"}
	case err != nil && !apperr.IsNotFound(err):
		return "", err
	}

	if err := s.repository.UpdateUsername(ctx, userID, username); err != nil {
		return "", err
	}
	return username, nil
}

// GetProfile loads the user with their cards and decks.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile := &Profile{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.repository.GetUser(gctx, userID)
		profile.User = user
		return err
	})
	g.Go(func() error {
		cards, err := s.repository.ListCards(gctx, userID)
		profile.Cards = cards
		return err
	})
	g.Go(func() error {
		decks, err := s.repository.ListDecks(gctx, userID)
		profile.Decks = decks
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if profile.Cards == nil {
		profile.Cards = []*models.Card{}
	}
	if profile.Decks == nil {
		profile.Decks = []*models.Deck{}
	}
	return profile, nil
}
