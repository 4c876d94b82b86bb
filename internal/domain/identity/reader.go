package identity

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
)

// KeyResolver returns the RSA key a token header's kid refers to.
type KeyResolver interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

type Options struct {
	ClientID     string
	IssuerPrefix string
	IssuerSuffix string
	// VerifyTokens makes Read check signatures and audience. When false
	// Read only decodes the token and checks issuer and expiry.
	VerifyTokens bool
}

type Reader struct {
	opts Options
	keys KeyResolver
	now  func() time.Time
}

func NewReader(opts Options, keys KeyResolver) *Reader {
	return &Reader{
		opts: opts,
		keys: keys,
		now:  time.Now,
	}
}

// Read extracts claims from an Authorization header value in the configured mode.
func (r *Reader) Read(ctx context.Context, header string) (*Claims, error) {
	if r.opts.VerifyTokens {
		return r.Verify(ctx, header)
	}
	return r.Decode(header)
}

// Decode parses the token without checking its signature.
func (r *Reader) Decode(header string) (*Claims, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, &apperr.AuthenticationError{Reason: "malformed token"}
	}
	if exp := claims.ExpiresAt; exp != nil && r.now().After(exp.Time) {
		return nil, &apperr.AuthenticationError{Reason: "token expired"}
	}
	return r.finish(claims)
}

// Verify parses the token and checks its RS256 signature, audience, issuer
// and expiry.
func (r *Reader) Verify(ctx context.Context, header string) (*Claims, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	if r.keys == nil {
		return nil, &apperr.AuthenticationError{Reason: "no signing keys configured"}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(r.now),
	}
	if r.opts.ClientID != "" {
		opts = append(opts, jwt.WithAudience(r.opts.ClientID))
	}

	claims := &Claims{}
	_, err = jwt.NewParser(opts...).ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid")
		}
		return r.keys.Key(ctx, kid)
	})
	if err != nil {
		return nil, &apperr.AuthenticationError{Reason: describe(err)}
	}
	return r.finish(claims)
}

func (r *Reader) finish(claims *Claims) (*Claims, error) {
	if !strings.HasPrefix(claims.Issuer, r.opts.IssuerPrefix) || !strings.HasSuffix(claims.Issuer, r.opts.IssuerSuffix) {
		return nil, &apperr.AuthenticationError{Reason: fmt.Sprintf("untrusted issuer %q", claims.Issuer)}
	}
	if claims.UserID() == "" {
		return nil, &apperr.AuthenticationError{Reason: "token has no subject"}
	}
	return claims, nil
}

// BearerToken strips the Bearer scheme from an Authorization header.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", &apperr.AuthenticationError{Reason: "missing bearer token"}
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", &apperr.AuthenticationError{Reason: "missing bearer token"}
	}
	return token, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return "token audience mismatch"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid token signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return err.Error()
	}
}
