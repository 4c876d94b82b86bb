package models

import (
	"github.com/tcgmarket/marketplace/internal/domain/catalog"
	"github.com/tcgmarket/marketplace/internal/domain/inventory"
	"github.com/tcgmarket/marketplace/internal/domain/profile"
)

// Services groups the domain services for injection into handlers.
type Services struct {
	Inventory *inventory.Service
	Catalog   *catalog.Service
	Profile   *profile.Service
}

func NewServices(inv *inventory.Service, cat *catalog.Service, prof *profile.Service) *Services {
	return &Services{
		Inventory: inv,
		Catalog:   cat,
		Profile:   prof,
	}
}
