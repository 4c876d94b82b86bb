package router

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tcgmarket/marketplace/backend/config"
	"github.com/tcgmarket/marketplace/backend/handlers"
	"github.com/tcgmarket/marketplace/backend/middleware"
	webmodels "github.com/tcgmarket/marketplace/backend/models"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/internal/domain/catalog"
	catalogmock "github.com/tcgmarket/marketplace/internal/domain/catalog/mock"
	"github.com/tcgmarket/marketplace/internal/domain/identity"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	inventorymock "github.com/tcgmarket/marketplace/internal/domain/inventory/mock"
	"github.com/tcgmarket/marketplace/internal/domain/profile"
	profilemock "github.com/tcgmarket/marketplace/internal/domain/profile/mock"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/tcgmarket/marketplace/marketplace"
)

const (
	testClientID = "client-123"
	testIssuer   = "https://login.microsoftonline.com/tenant-1/v2.0"
	testKID      = "key-1"
)

type fakeDB struct{ err error }

func (f fakeDB) Ping(context.Context) error { return f.err }

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

type testServer struct {
	inventory *inventorymock.MockRepository
	catalog   *catalogmock.MockRepository
	profile   *profilemock.MockRepository
	images    *fakeImages
	key       *rsa.PrivateKey
	webApp    *handlers.WebApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	s := &testServer{
		inventory: inventorymock.NewMockRepository(ctrl),
		catalog:   catalogmock.NewMockRepository(ctrl),
		profile:   profilemock.NewMockRepository(ctrl),
		images:    &fakeImages{},
		key:       key,
	}
	s.inventory.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, inventory.Repository) error) error {
			return fn(ctx, s.inventory)
		}).
		AnyTimes()

	reader := identity.NewReader(identity.Options{
		ClientID:     testClientID,
		IssuerPrefix: "https://login.microsoftonline.com/",
		IssuerSuffix: "/v2.0",
	}, identity.StaticKeys{testKID: &key.PublicKey})

	s.webApp = &handlers.WebApp{
		Config: config.NewWebAppConfig(&marketplace.Config{}),
		DB:     fakeDB{},
		Services: webmodels.NewServices(
			inventory.NewService(s.inventory, s.images),
			catalog.NewService(s.catalog, s.images, "https://cdn.example.com/default.jpg"),
			profile.NewService(s.profile),
		),
		Identity: reader,
		Version:  "test",
		Commit:   "abc123",
	}
	return s
}

func testClaims() *identity.Claims {
	return &identity.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "sub-1",
			Audience:  jwt.ClaimStrings{testClientID},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ObjectID:          "oid-1",
		PreferredUsername: "ash",
		Email:             "ash@example.com",
	}
}

func unsignedToken(t *testing.T) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, testClaims()).SignedString([]byte("not-checked"))
	require.NoError(t, err)
	return "Bearer " + signed
}

func (s *testServer) signedToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, testClaims())
	token.Header["kid"] = testKID
	signed, err := token.SignedString(s.key)
	require.NoError(t, err)
	return "Bearer " + signed
}

func do(t *testing.T, s *testServer, limiters Limiters, method, target, auth, body string) (int, map[string]any) {
	t.Helper()
	app := New(s.webApp, limiters)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	envelope, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error envelope in %v", body)
	assert.Equal(t, false, body["success"])
	code, _ := envelope["code"].(string)
	return code
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		wantStatus int
		wantHealth string
	}{
		{name: "database up", wantStatus: http.StatusOK, wantHealth: "healthy"},
		{name: "database down", dbErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantHealth: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.webApp.DB = fakeDB{err: tt.dbErr}

			status, body := do(t, s, Limiters{}, http.MethodGet, "/health", "", "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantHealth, body["status"])
			assert.Equal(t, "test", body["version"])
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	status, body := do(t, s, Limiters{}, http.MethodGet, "/api/DoesNotExist", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestRequiredIdentity(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "user cards", method: http.MethodGet, target: "/api/GetUserCards"},
		{name: "favorites", method: http.MethodGet, target: "/api/GetFavorites"},
		{name: "add card", method: http.MethodPost, target: "/api/AddCard"},
		{name: "delete item", method: http.MethodDelete, target: "/api/DeleteItem?cardId=1"},
		{name: "update profile", method: http.MethodPut, target: "/api/UpdateUserProfile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			status, body := do(t, s, Limiters{}, tt.method, tt.target, "", "")
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "UNAUTHORIZED", errorCode(t, body))
		})
	}
}

func TestGetUserProfile(t *testing.T) {
	s := newTestServer(t)
	s.profile.EXPECT().GetUser(gomock.Any(), "oid-1").Return(&models.User{ID: "oid-1", Username: "ash"}, nil)
	s.profile.EXPECT().ListCards(gomock.Any(), "oid-1").Return([]*models.Card{{ID: 7, UserID: "oid-1", Name: "Pikachu"}}, nil)
	s.profile.EXPECT().ListDecks(gomock.Any(), "oid-1").Return(nil, nil)

	status, body := do(t, s, Limiters{}, http.MethodGet, "/api/GetUserProfile", unsignedToken(t), "")
	require.Equal(t, http.StatusOK, status)

	user := body["user"].(map[string]any)
	assert.Equal(t, "ash", user["Username"])
	assert.Len(t, body["cards"], 1)
	assert.Empty(t, body["decks"])
}

func TestUpdateUserProfile(t *testing.T) {
	t.Run("empty username", func(t *testing.T) {
		s := newTestServer(t)
		status, body := do(t, s, Limiters{}, http.MethodPut, "/api/UpdateUserProfile", unsignedToken(t), `{"username":"  "}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, body))
	})

	t.Run("taken by another user", func(t *testing.T) {
		s := newTestServer(t)
		s.profile.EXPECT().GetUser(gomock.Any(), "oid-1").Return(&models.User{ID: "oid-1"}, nil)
		s.profile.EXPECT().GetByUsername(gomock.Any(), "misty").Return(&models.User{ID: "oid-2"}, nil)

		status, body := do(t, s, Limiters{}, http.MethodPut, "/api/UpdateUserProfile", unsignedToken(t), `{"username":"misty"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "CONFLICT", errorCode(t, body))
	})

	t.Run("renamed", func(t *testing.T) {
		s := newTestServer(t)
		s.profile.EXPECT().GetUser(gomock.Any(), "oid-1").Return(&models.User{ID: "oid-1"}, nil)
		s.profile.EXPECT().GetByUsername(gomock.Any(), "misty").Return(nil, &apperr.NotFoundError{Entity: "user", ID: "misty"})
		s.profile.EXPECT().UpdateUsername(gomock.Any(), "oid-1", "misty").Return(nil)

		status, body := do(t, s, Limiters{}, http.MethodPut, "/api/UpdateUserProfile", unsignedToken(t), `{"username":"misty"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "misty", body["username"])
	})
}

func TestToggleFavorite(t *testing.T) {
	t.Run("both ids", func(t *testing.T) {
		s := newTestServer(t)
		status, _ := do(t, s, Limiters{}, http.MethodPost, "/api/ToggleFavorite", unsignedToken(t), `{"cardId":1,"deckId":2}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("added then removed", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.EXPECT().GetCard(gomock.Any(), int64(5)).Return(&models.Card{ID: 5}, nil).Times(2)
		gomock.InOrder(
			s.catalog.EXPECT().ToggleCardFavorite(gomock.Any(), "oid-1", int64(5)).Return(true, nil),
			s.catalog.EXPECT().ToggleCardFavorite(gomock.Any(), "oid-1", int64(5)).Return(false, nil),
		)

		status, _ := do(t, s, Limiters{}, http.MethodPost, "/api/ToggleFavorite", unsignedToken(t), `{"cardId":5}`)
		assert.Equal(t, http.StatusCreated, status)

		status, _ = do(t, s, Limiters{}, http.MethodPost, "/api/ToggleFavorite", unsignedToken(t), `{"cardId":5}`)
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestGetCardQuantity(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		s := newTestServer(t)
		status, _ := do(t, s, Limiters{}, http.MethodPost, "/api/GetCardQuantity", "", `{"cardIds":[]}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("none found", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().GetQuantities(gomock.Any(), []int64{9}).Return(nil, nil)

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/GetCardQuantity", "", `{"cardIds":[9]}`)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", errorCode(t, body))
	})

	t.Run("found", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().GetQuantities(gomock.Any(), []int64{1, 2}).
			Return([]*models.CardQuantity{{ID: 1, Quantity: 4}, {ID: 2, Quantity: 0}}, nil)

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/GetCardQuantity", "", `{"cardIds":[1,2,1]}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"1": float64(4), "2": float64(0)}, body)
	})
}

func TestUserLogin(t *testing.T) {
	t.Run("unsigned token rejected", func(t *testing.T) {
		s := newTestServer(t)
		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/UserLogin", unsignedToken(t), "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, body))
	})

	t.Run("existing user", func(t *testing.T) {
		s := newTestServer(t)
		s.profile.EXPECT().FindExisting(gomock.Any(), "oid-1", "ash@example.com", "ash").
			Return(&models.User{ID: "oid-1", Username: "ash"}, nil)

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/UserLogin", s.signedToken(t), "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "oid-1", body["user"].(map[string]any)["UserId"])
	})

	t.Run("rate limited", func(t *testing.T) {
		s := newTestServer(t)
		limiter := middleware.NewRateLimiter(1, time.Minute)
		defer limiter.Close()

		s.profile.EXPECT().FindExisting(gomock.Any(), "oid-1", "ash@example.com", "ash").
			Return(&models.User{ID: "oid-1"}, nil)

		limiters := Limiters{Login: limiter}
		status, _ := do(t, s, limiters, http.MethodPost, "/api/UserLogin", s.signedToken(t), "")
		assert.Equal(t, http.StatusOK, status)

		status, body := do(t, s, limiters, http.MethodPost, "/api/UserLogin", s.signedToken(t), "")
		assert.Equal(t, http.StatusTooManyRequests, status)
		assert.Equal(t, "RATE_LIMIT_EXCEEDED", errorCode(t, body))
	})
}

func encoded(data string) string {
	return base64.StdEncoding.EncodeToString([]byte(data))
}

func TestCreateDeck(t *testing.T) {
	t.Run("missing cards", func(t *testing.T) {
		s := newTestServer(t)
		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/CreateDeck", unsignedToken(t), `{"name":"Fire","cards":[]}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, body))
	})

	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Deck) error {
			assert.Equal(t, "oid-1", d.UserID)
			assert.Equal(t, "https://cdn.example.com/default.jpg", d.ImageURL)
			d.ID = 42
			return nil
		})
		s.inventory.EXPECT().LockCard(gomock.Any(), int64(1)).
			Return(&models.Card{ID: 1, UserID: "oid-1", Price: decimal.NewFromInt(5), Quantity: 10}, nil)
		s.inventory.EXPECT().AddAllocation(gomock.Any(), int64(42), int64(1), 2).Return(nil)
		s.inventory.EXPECT().SetCardQuantity(gomock.Any(), int64(1), 8).Return(nil)
		s.inventory.EXPECT().SetDeckTotal(gomock.Any(), int64(42), gomock.Any()).Return(nil)

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/CreateDeck", unsignedToken(t),
			`{"name":"Fire","cards":[{"cardId":1,"quantity":2}]}`)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, float64(42), body["deckId"])
		assert.Equal(t, "10", body["totalPrice"])
	})

	t.Run("short card keeps the partial deck", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Deck) error {
			assert.Equal(t, "https://cdn.example.com/deck-images/fire.jpg", d.ImageURL)
			d.ID = 42
			return nil
		})
		s.inventory.EXPECT().LockCard(gomock.Any(), int64(1)).
			Return(&models.Card{ID: 1, UserID: "oid-1", Price: decimal.NewFromInt(5), Quantity: 10}, nil)
		s.inventory.EXPECT().AddAllocation(gomock.Any(), int64(42), int64(1), 2).Return(nil)
		s.inventory.EXPECT().SetCardQuantity(gomock.Any(), int64(1), 8).Return(nil)
		s.inventory.EXPECT().SetDeckTotal(gomock.Any(), int64(42), gomock.Any()).Return(nil)
		s.inventory.EXPECT().LockCard(gomock.Any(), int64(2)).
			Return(&models.Card{ID: 2, UserID: "oid-1", Price: decimal.NewFromInt(1), Quantity: 1}, nil)

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/CreateDeck", unsignedToken(t),
			`{"name":"Fire","image":"`+encoded("fire")+`","cards":[{"cardId":1,"quantity":2},{"cardId":2,"quantity":5}]}`)
		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "CONFLICT", errorCode(t, body))

		details := body["error"].(map[string]any)["details"].(map[string]any)
		assert.Equal(t, "42", details["deckId"])
		assert.Equal(t, "10.00", details["totalPrice"])
		assert.Empty(t, s.images.deleted, "the kept deck still uses the upload")
	})

	t.Run("deck row not created", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().CreateDeck(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/CreateDeck", unsignedToken(t),
			`{"name":"Fire","image":"`+encoded("fire")+`","cards":[{"cardId":1,"quantity":2}]}`)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", errorCode(t, body))
		assert.Equal(t, []string{"https://cdn.example.com/deck-images/fire.jpg"}, s.images.deleted)
	})
}

func TestAddTransaction(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		s := newTestServer(t)
		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/AddTransaction", unsignedToken(t), `{"items":[],"totalAmount":1}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, body))
	})

	t.Run("recorded", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tr *models.Transaction) error {
			assert.Equal(t, "oid-1", tr.UserID)
			tr.ID = 7
			return nil
		})
		s.inventory.EXPECT().LockCard(gomock.Any(), int64(1)).
			Return(&models.Card{ID: 1, UserID: "oid-2", Price: decimal.RequireFromString("2.50"), Quantity: 3}, nil)
		s.inventory.EXPECT().CreateCardHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *models.CardHistory) error {
			h.ID = 11
			return nil
		})
		s.inventory.EXPECT().CreateTransactionDetail(gomock.Any(), gomock.Any()).Return(nil)
		s.inventory.EXPECT().SetCardQuantity(gomock.Any(), int64(1), 2).Return(nil)

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/AddTransaction", unsignedToken(t),
			`{"items":[{"cardId":1,"quantity":1,"price":2.5}],"totalAmount":2.5}`)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, float64(7), body["transactionId"])
		assert.Equal(t, "Transaction completed", body["message"])
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("no id", func(t *testing.T) {
		s := newTestServer(t)
		status, body := do(t, s, Limiters{}, http.MethodDelete, "/api/DeleteItem", unsignedToken(t), "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, body))
	})

	t.Run("card of another user", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().LockCard(gomock.Any(), int64(5)).Return(&models.Card{ID: 5, UserID: "oid-2"}, nil)

		status, body := do(t, s, Limiters{}, http.MethodDelete, "/api/DeleteItem?cardId=5", unsignedToken(t), "")
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", errorCode(t, body))
	})

	t.Run("deck of another user", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().LockDeck(gomock.Any(), int64(3)).Return(&models.Deck{ID: 3, UserID: "oid-2"}, nil)

		status, body := do(t, s, Limiters{}, http.MethodPost, "/api/DeleteItem", unsignedToken(t), `{"deckId":3}`)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", errorCode(t, body))
	})
}

func TestUpdateDeck(t *testing.T) {
	const (
		oldImage = "https://cdn.example.com/deck-images/old.jpg"
		newImage = "https://cdn.example.com/deck-images/new.jpg"
	)

	t.Run("missing deck id", func(t *testing.T) {
		s := newTestServer(t)
		status, body := do(t, s, Limiters{}, http.MethodPut, "/api/UpdateDeck", unsignedToken(t), `{"name":"Water"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, body))
	})

	t.Run("deck of another user discards the upload", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().LockDeck(gomock.Any(), int64(3)).
			Return(&models.Deck{ID: 3, UserID: "oid-2", ImageURL: oldImage}, nil)

		status, body := do(t, s, Limiters{}, http.MethodPut, "/api/UpdateDeck", unsignedToken(t),
			`{"deckId":3,"name":"Water","image":"`+encoded("new")+`"}`)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", errorCode(t, body))
		assert.Equal(t, []string{newImage}, s.images.deleted)
	})

	t.Run("renamed with a new image", func(t *testing.T) {
		s := newTestServer(t)
		s.inventory.EXPECT().LockDeck(gomock.Any(), int64(3)).
			Return(&models.Deck{ID: 3, UserID: "oid-1", Name: "Fire", ImageURL: oldImage}, nil)
		s.inventory.EXPECT().RecomputeDeckTotal(gomock.Any(), int64(3)).Return(decimal.NewFromInt(15), nil)
		s.inventory.EXPECT().UpdateDeck(gomock.Any(), gomock.Any(), []string{"name", "image_url"}).Return(nil)

		status, body := do(t, s, Limiters{}, http.MethodPut, "/api/UpdateDeck", unsignedToken(t),
			`{"deckId":3,"name":"Water","image":"`+encoded("new")+`"}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, newImage, body["imageUrl"])
		assert.Equal(t, "15", body["totalPrice"])
		assert.Equal(t, []string{oldImage}, s.images.deleted, "the replaced image is deleted after commit")
	})
}
