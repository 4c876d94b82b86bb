package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
)

const (
	testIssuer   = "https://login.microsoftonline.com/tenant-1/v2.0"
	testClientID = "client-123"
)

func testOptions(verify bool) Options {
	return Options{
		ClientID:     testClientID,
		IssuerPrefix: "https://login.microsoftonline.com/",
		IssuerSuffix: "/v2.0",
		VerifyTokens: verify,
	}
}

func baseClaims() *Claims {
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "sub-1",
			Audience:  jwt.ClaimStrings{testClientID},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ObjectID:          "oid-1",
		PreferredUsername: "ash@example.com",
	}
}

func signRS256(t *testing.T, key *rsa.PrivateKey, kid string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func signHS256(t *testing.T, claims *Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-checked"))
	require.NoError(t, err)
	return signed
}

func TestReader_Decode(t *testing.T) {
	expired := baseClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	foreign := baseClaims()
	foreign.Issuer = "https://evil.example.com/v2.0"

	subOnly := baseClaims()
	subOnly.ObjectID = ""

	tests := []struct {
		name    string
		header  func(t *testing.T) string
		wantID  string
		wantErr bool
	}{
		{
			name:   "valid token",
			header: func(t *testing.T) string { return "Bearer " + signHS256(t, baseClaims()) },
			wantID: "oid-1",
		},
		{
			name:   "scheme is case insensitive",
			header: func(t *testing.T) string { return "bearer " + signHS256(t, baseClaims()) },
			wantID: "oid-1",
		},
		{
			name:   "falls back to sub",
			header: func(t *testing.T) string { return "Bearer " + signHS256(t, subOnly) },
			wantID: "sub-1",
		},
		{
			name:    "missing header",
			header:  func(t *testing.T) string { return "" },
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  func(t *testing.T) string { return "Basic abc" },
			wantErr: true,
		},
		{
			name:    "garbage token",
			header:  func(t *testing.T) string { return "Bearer not.a.jwt" },
			wantErr: true,
		},
		{
			name:    "expired",
			header:  func(t *testing.T) string { return "Bearer " + signHS256(t, expired) },
			wantErr: true,
		},
		{
			name:    "foreign issuer",
			header:  func(t *testing.T) string { return "Bearer " + signHS256(t, foreign) },
			wantErr: true,
		},
	}

	reader := NewReader(testOptions(false), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := reader.Read(context.Background(), tt.header(t))
			if tt.wantErr {
				assert.True(t, apperr.IsAuthentication(err), "want authentication error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, claims.UserID())
		})
	}
}

func TestReader_Verify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keys := StaticKeys{"kid-1": &key.PublicKey}
	reader := NewReader(testOptions(true), keys)

	wrongAudience := baseClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}

	noExpiry := baseClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid signature", token: signRS256(t, key, "kid-1", baseClaims())},
		{name: "unknown kid", token: signRS256(t, key, "kid-2", baseClaims()), wantErr: true},
		{name: "wrong key", token: signRS256(t, other, "kid-1", baseClaims()), wantErr: true},
		{name: "wrong audience", token: signRS256(t, key, "kid-1", wrongAudience), wantErr: true},
		{name: "no expiry", token: signRS256(t, key, "kid-1", noExpiry), wantErr: true},
		{name: "hmac token", token: signHS256(t, baseClaims()), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := reader.Read(context.Background(), "Bearer "+tt.token)
			if tt.wantErr {
				assert.True(t, apperr.IsAuthentication(err), "want authentication error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "oid-1", claims.UserID())
			assert.Equal(t, "ash@example.com", claims.PreferredUsername)
		})
	}

	// decode mode still verifies when asked
	decoding := NewReader(testOptions(false), keys)
	_, err = decoding.Verify(context.Background(), "Bearer "+signHS256(t, baseClaims()))
	assert.True(t, apperr.IsAuthentication(err))
}

func TestClaims_DisplayName(t *testing.T) {
	assert.Equal(t, "Ash", (&Claims{Name: "Ash"}).DisplayName())
	assert.Equal(t, "Ash Ketchum", (&Claims{GivenName: "Ash", FamilyName: "Ketchum"}).DisplayName())
	assert.Equal(t, "", (&Claims{}).DisplayName())
}
