// Package identity turns bearer tokens issued by the Microsoft identity
// platform into caller claims.
package identity

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token fields the marketplace reads.
type Claims struct {
	jwt.RegisteredClaims

	ObjectID          string `json:"oid,omitempty"`
	Email             string `json:"email,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	Name              string `json:"name,omitempty"`
	GivenName         string `json:"given_name,omitempty"`
	FamilyName        string `json:"family_name,omitempty"`
}

// UserID is the stable caller id: the oid claim, falling back to sub.
func (c *Claims) UserID() string {
	if c.ObjectID != "" {
		return c.ObjectID
	}
	return c.Subject
}

// DisplayName is name, or given and family name joined.
func (c *Claims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.GivenName + " " + c.FamilyName)
}
