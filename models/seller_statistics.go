package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerStatistics aggregates a seller's figures for one month.
type SellerStatistics struct {
	ID      int64
	Deleted bool

	CreatedOnUtc time.Time
	UpdatedOnUtc time.Time

	SellerID       int64
	Month          int
	TotalInvoiced  decimal.Decimal
	TotalCollected decimal.Decimal
	Activations    int
}

func (s SellerStatistics) GetID() int64               { return s.ID }
func (s SellerStatistics) GetUpdatedOnUtc() time.Time { return s.UpdatedOnUtc }
