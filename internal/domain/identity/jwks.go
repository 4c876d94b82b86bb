package identity

import (
	"context"
	"crypto/rsa"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	lru "github.com/hashicorp/golang-lru"
	"github.com/tcgmarket/marketplace/marketplace/config"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// JWKSResolver resolves signing keys from a JWKS endpoint. The key set is
// refreshed in the background until the construction context ends, and an
// unknown kid triggers a rate limited refetch. Resolved keys are cached by
// kid and concurrent misses for the same kid share one lookup.
type JWKSResolver struct {
	keys  keyfunc.Keyfunc
	cache *lru.Cache
	group singleflight.Group
}

func NewJWKSResolver(ctx context.Context, url string, client *http.Client) (*JWKSResolver, error) {
	cache, err := lru.New(config.KeyCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create key cache: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: config.KeyFetchTimeout}
	}

	remote, err := jwkset.NewStorageFromHTTP(url, jwkset.HTTPClientStorageOptions{
		Client:                    client,
		Ctx:                       ctx,
		HTTPTimeout:               config.KeyFetchTimeout,
		NoErrorReturnFirstHTTPReq: true,
		RefreshInterval:           config.KeyRefreshInterval,
		RefreshErrorHandler: func(_ context.Context, err error) {
			slog.Warn("Failed to refresh signing keys",
				slog.String("type", "auth"),
				slog.String("url", url),
				slog.String("error", err.Error()))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create key storage: %w", err)
	}

	storage, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
		HTTPURLs:          map[string]jwkset.Storage{url: remote},
		RateLimitWaitMax:  config.KeyFetchTimeout,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(config.KeyUnknownRefresh), 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create key client: %w", err)
	}

	keys, err := keyfunc.New(keyfunc.Options{Ctx: ctx, Storage: storage})
	if err != nil {
		return nil, fmt.Errorf("failed to create key resolver: %w", err)
	}

	return &JWKSResolver{keys: keys, cache: cache}, nil
}

func (r *JWKSResolver) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok := r.cache.Get(kid); ok {
		return key.(*rsa.PublicKey), nil
	}

	key, err, _ := r.group.Do(kid, func() (interface{}, error) {
		jwk, err := r.keys.Storage().KeyRead(ctx, kid)
		if err != nil {
			return nil, fmt.Errorf("unknown signing key %q: %w", kid, err)
		}
		rsaKey, ok := jwk.Key().(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("signing key %q is not an RSA public key", kid)
		}
		r.cache.Add(kid, rsaKey)
		return rsaKey, nil
	})
	if err != nil {
		return nil, err
	}
	return key.(*rsa.PublicKey), nil
}

// StaticKeys resolves kids from a fixed set.
type StaticKeys map[string]*rsa.PublicKey

func (s StaticKeys) Key(_ context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok := s[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("unknown signing key %q", kid)
}
