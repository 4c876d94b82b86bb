package profile_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/domain/identity"
	"github.com/tcgmarket/marketplace/internal/domain/profile"
	"github.com/tcgmarket/marketplace/internal/domain/profile/mock"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

func notFound(id string) error {
	return &apperr.NotFoundError{Entity: "user", ID: id}
}

func TestNewUser(t *testing.T) {
	tests := []struct {
		name   string
		claims *identity.Claims
		want   *models.User
	}{
		{
			name: "all claims present",
			claims: &identity.Claims{
				ObjectID:          "oid-1",
				PreferredUsername: "ash",
				Email:             "ash@example.com",
				Name:              "Ash Ketchum",
			},
			want: &models.User{ID: "oid-1", Username: "ash", Email: "ash@example.com", Name: "Ash Ketchum"},
		},
		{
			name:   "username falls back to email",
			claims: &identity.Claims{ObjectID: "oid-2", Email: "misty@example.com", GivenName: "Misty", FamilyName: "Waterflower"},
			want:   &models.User{ID: "oid-2", Username: "misty@example.com", Email: "misty@example.com", Name: "Misty Waterflower"},
		},
		{
			name:   "defaults",
			claims: &identity.Claims{ObjectID: "oid-3"},
			want:   &models.User{ID: "oid-3", Username: "Unknown", Email: "no-email@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profile.NewUser(tt.claims); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewUser() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	claims := &identity.Claims{ObjectID: "oid-1", PreferredUsername: "ash", Email: "ash@example.com"}

	t.Run("first login creates the user", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		created := &models.User{ID: "oid-1", Username: "ash", Email: "ash@example.com"}

		repo.EXPECT().FindExisting(gomock.Any(), "oid-1", "ash@example.com", "ash").Return(nil, notFound("oid-1"))
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().GetUser(gomock.Any(), "oid-1").Return(created, nil)

		got, err := profile.NewService(repo).Login(context.Background(), claims)
		if err != nil {
			t.Fatalf("service.Login() error = %v", err)
		}
		if got != created {
			t.Errorf("service.Login() = %+v, want %+v", got, created)
		}
	})

	t.Run("repeat login inserts nothing", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		existing := &models.User{ID: "oid-1", Username: "renamed"}

		repo.EXPECT().FindExisting(gomock.Any(), "oid-1", "ash@example.com", "ash").Return(existing, nil).Times(2)

		service := profile.NewService(repo)
		for i := 0; i < 2; i++ {
			got, err := service.Login(context.Background(), claims)
			if err != nil || got != existing {
				t.Errorf("service.Login() = %+v, %v, want existing user", got, err)
			}
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().FindExisting(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		if _, err := profile.NewService(repo).Login(context.Background(), claims); err == nil {
			t.Error("service.Login() error = nil, want error")
		}
	})
}

func TestService_UpdateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		setup    func(repo *mock.MockRepository)
		want     string
		wantErr  func(error) bool
	}{
		{
			name:     "empty",
			username: "   ",
			setup:    func(repo *mock.MockRepository) {},
			wantErr:  apperr.IsValidation,
		},
		{
			name:     "unknown user",
			username: "ash",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUser(gomock.Any(), "u1").Return(nil, notFound("u1"))
			},
			wantErr: apperr.IsNotFound,
		},
		{
			name:     "taken by another user",
			username: "brock",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUser(gomock.Any(), "u1").Return(&models.User{ID: "u1"}, nil)
				repo.EXPECT().GetByUsername(gomock.Any(), "brock").Return(&models.User{ID: "u2"}, nil)
			},
			wantErr: apperr.IsConflict,
		},
		{
			name:     "keeping own name",
			username: " ash ",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUser(gomock.Any(), "u1").Return(&models.User{ID: "u1", Username: "ash"}, nil)
				repo.EXPECT().GetByUsername(gomock.Any(), "ash").Return(&models.User{ID: "u1"}, nil)
				repo.EXPECT().UpdateUsername(gomock.Any(), "u1", "ash").Return(nil)
			},
			want: "ash",
		},
		{
			name:     "free name",
			username: "red",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUser(gomock.Any(), "u1").Return(&models.User{ID: "u1"}, nil)
				repo.EXPECT().GetByUsername(gomock.Any(), "red").Return(nil, notFound("red"))
				repo.EXPECT().UpdateUsername(gomock.Any(), "u1", "red").Return(nil)
			},
			want: "red",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			tt.setup(repo)

			got, err := profile.NewService(repo).UpdateUsername(context.Background(), "u1", tt.username)
			if tt.wantErr != nil {
				if err == nil || !tt.wantErr(err) {
					t.Errorf("service.UpdateUsername() error = %v, want matching error", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("service.UpdateUsername() = %q, %v, want %q", got, err, tt.want)
			}
		})
	}
}

func TestService_GetProfile(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	user := &models.User{ID: "u1"}
	cards := []*models.Card{{ID: 1, UserID: "u1"}}

	repo.EXPECT().GetUser(gomock.Any(), "u1").Return(user, nil)
	repo.EXPECT().ListCards(gomock.Any(), "u1").Return(cards, nil)
	repo.EXPECT().ListDecks(gomock.Any(), "u1").Return(nil, nil)

	got, err := profile.NewService(repo).GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("service.GetProfile() error = %v", err)
	}
	if got.User != user || !reflect.DeepEqual(got.Cards, cards) || got.Decks == nil || len(got.Decks) != 0 {
		t.Errorf("service.GetProfile() = %+v", got)
	}

	missing := mock.NewMockRepository(gomock.NewController(t))
	missing.EXPECT().GetUser(gomock.Any(), "u2").Return(nil, notFound("u2"))
	missing.EXPECT().ListCards(gomock.Any(), "u2").Return(nil, nil).AnyTimes()
	missing.EXPECT().ListDecks(gomock.Any(), "u2").Return(nil, nil).AnyTimes()

	if _, err := profile.NewService(missing).GetProfile(context.Background(), "u2"); !apperr.IsNotFound(err) {
		t.Errorf("service.GetProfile() error = %v, want not found", err)
	}
}
