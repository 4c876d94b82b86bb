package catalog_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/domain/catalog"
	"github.com/tcgmarket/marketplace/internal/domain/catalog/mock"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

const defaultImage = "https://cdn.example.com/default.jpg"

type fakeImages struct {
	uploads []string
	deleted []string
}

func (f *fakeImages) Upload(_ context.Context, folder string, data []byte, _ string) (string, error) {
	url := "https://cdn.example.com/" + folder + "/" + string(data) + ".jpg"
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeImages) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_AddCard(t *testing.T) {
	tests := []struct {
		name      string
		req       catalog.NewCard
		createErr error
		wantURL   string
		wantErr   bool
		wantField string
	}{
		{
			name:    "default image",
			req:     catalog.NewCard{OwnerID: "u1", Name: "Pikachu", Price: decimal.NewFromInt(3), Quantity: 2},
			wantURL: defaultImage,
		},
		{
			name:    "uploaded image",
			req:     catalog.NewCard{OwnerID: "u1", Name: "Pikachu", Price: decimal.NewFromInt(3), Quantity: 2, Image: base64.StdEncoding.EncodeToString([]byte("pika"))},
			wantURL: "https://cdn.example.com/card-images/pika.jpg",
		},
		{
			name:      "missing name",
			req:       catalog.NewCard{Price: decimal.NewFromInt(3), Quantity: 2},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "negative price",
			req:       catalog.NewCard{Name: "Pikachu", Price: decimal.NewFromInt(-1), Quantity: 2},
			wantErr:   true,
			wantField: "price",
		},
		{
			name:      "zero quantity",
			req:       catalog.NewCard{Name: "Pikachu", Price: decimal.NewFromInt(1)},
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name:      "bad image",
			req:       catalog.NewCard{Name: "Pikachu", Price: decimal.NewFromInt(1), Quantity: 1, Image: "%%%"},
			wantErr:   true,
			wantField: "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			images := &fakeImages{}
			if !tt.wantErr {
				repo.EXPECT().CreateCard(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, card *models.Card) error {
					card.ID = 77
					return nil
				})
			}

			card, err := catalog.NewService(repo, images, defaultImage).AddCard(context.Background(), tt.req)
			if tt.wantErr {
				var verr *apperr.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(77), card.ID)
			assert.Equal(t, tt.wantURL, card.ImageURL)
		})
	}
}

func TestService_AddCard_DiscardsUploadOnFailure(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	images := &fakeImages{}
	repo.EXPECT().CreateCard(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := catalog.NewService(repo, images, defaultImage).AddCard(context.Background(), catalog.NewCard{
		OwnerID:  "u1",
		Name:     "Eevee",
		Price:    decimal.NewFromInt(1),
		Quantity: 1,
		Image:    "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("eevee")),
	})
	require.Error(t, err)
	assert.Equal(t, images.uploads, images.deleted)
}

func TestDecodeImage(t *testing.T) {
	raw := []byte("image-bytes")
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "plain", in: base64.StdEncoding.EncodeToString(raw)},
		{name: "data url", in: "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)},
		{name: "unpadded", in: base64.RawStdEncoding.EncodeToString(raw)},
		{name: "invalid", in: "not base64!", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.DecodeImage(tt.in)
			if tt.wantErr {
				assert.True(t, apperr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestService_ToggleFavorite(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	service := catalog.NewService(repo, &fakeImages{}, defaultImage)

	repo.EXPECT().GetCard(gomock.Any(), int64(1)).Return(&models.Card{ID: 1}, nil).Times(2)
	gomock.InOrder(
		repo.EXPECT().ToggleCardFavorite(gomock.Any(), "u1", int64(1)).Return(true, nil),
		repo.EXPECT().ToggleCardFavorite(gomock.Any(), "u1", int64(1)).Return(false, nil),
	)

	added, err := service.ToggleFavorite(context.Background(), "u1", ptr(int64(1)), nil)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = service.ToggleFavorite(context.Background(), "u1", ptr(int64(1)), nil)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = service.ToggleFavorite(context.Background(), "u1", ptr(int64(1)), ptr(int64(2)))
	assert.True(t, apperr.IsValidation(err))

	repo.EXPECT().GetDeck(gomock.Any(), int64(9)).Return(nil, &apperr.NotFoundError{Entity: "deck", ID: int64(9)})
	_, err = service.ToggleFavorite(context.Background(), "u1", nil, ptr(int64(9)))
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_GetDeckCards(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	service := catalog.NewService(repo, &fakeImages{}, defaultImage)

	repo.EXPECT().GetDeckCards(gomock.Any(), int64(1)).Return(nil, nil)
	_, err := service.GetDeckCards(context.Background(), 1)
	assert.True(t, apperr.IsNotFound(err))

	cards := []*models.AllocatedCard{{Card: models.Card{ID: 4}, DeckQuantity: 2}}
	repo.EXPECT().GetDeckCards(gomock.Any(), int64(2)).Return(cards, nil)
	got, err := service.GetDeckCards(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, cards, got)
}

func TestService_GetDeck(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	deck := &models.Deck{ID: 3, Name: "Burn"}
	repo.EXPECT().GetDeck(gomock.Any(), int64(3)).Return(deck, nil)
	repo.EXPECT().GetDeckCards(gomock.Any(), int64(3)).Return(nil, nil)

	got, err := catalog.NewService(repo, &fakeImages{}, defaultImage).GetDeck(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, deck, got.Deck)
	assert.NotNil(t, got.Cards)
}

func TestService_ListTransactions(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().ListTransactions(gomock.Any(), "u1").Return([]*models.Transaction{
		{
			ID:              5,
			TotalAmount:     decimal.NewFromInt(13),
			TransactionDate: when,
			Details: []*models.TransactionDetail{
				{Quantity: 2, Price: decimal.NewFromInt(4), CardHistory: &models.CardHistory{Name: "Bolt"}},
				{Quantity: 1, Price: decimal.NewFromInt(5), DeckHistory: &models.DeckHistory{Name: "Burn"}},
			},
		},
	}, nil)

	views, err := catalog.NewService(repo, &fakeImages{}, defaultImage).ListTransactions(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(5), views[0].TransactionID)
	require.Len(t, views[0].Details, 2)

	card, deck := views[0].Details[0], views[0].Details[1]
	assert.Equal(t, "Bolt", *card.CardName)
	assert.Equal(t, 2, *card.CardQuantity)
	assert.True(t, card.CardPrice.Equal(decimal.NewFromInt(4)))
	assert.Nil(t, card.DeckName)
	assert.Equal(t, "Burn", *deck.DeckName)
	assert.True(t, deck.DeckPrice.Equal(decimal.NewFromInt(5)))
	assert.Nil(t, deck.CardQuantity)
}

func TestService_SearchCards(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	service := catalog.NewService(repo, &fakeImages{}, defaultImage)

	cards := []*models.Card{
		{ID: 1, Name: "Pikachu"},
		{ID: 2, Name: "Charizard"},
		{ID: 3, Name: "Charmander"},
	}
	repo.EXPECT().ListSearchableCards(gomock.Any()).Return(cards, nil).Times(2)

	got, err := service.SearchCards(context.Background(), "CHAR", 0)
	require.NoError(t, err)
	ids := make([]int64, len(got))
	for i, c := range got {
		ids[i] = c.ID
	}
	assert.ElementsMatch(t, []int64{2, 3}, ids)

	got, err = service.SearchCards(context.Background(), "char", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = service.SearchCards(context.Background(), "  ", 0)
	assert.True(t, apperr.IsValidation(err))
}
