package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User rows are keyed by the identity provider's subject id.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        string    `bun:"user_id,pk" json:"UserId"`
	Username  string    `bun:"username,notnull,unique" json:"Username"`
	Email     string    `bun:"email,notnull" json:"Email"`
	Name      string    `bun:"name,notnull,default:''" json:"Name"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"CreatedAt"`
}
