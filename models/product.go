package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The catalog is shared by every seller.
type Product struct {
	ID      int64
	Deleted bool

	CreatedOnUtc time.Time
	UpdatedOnUtc time.Time

	Sku           *string
	Name          string
	Price         decimal.Decimal
	OldPrice      decimal.Decimal
	StockQuantity int
	Published     bool

	CategoryIDs []int64
}

func (p Product) GetID() int64               { return p.ID }
func (p Product) GetUpdatedOnUtc() time.Time { return p.UpdatedOnUtc }
