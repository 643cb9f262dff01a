package service

import (
	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

var SellerStatisticsSchema = models.Schema{
	Resource: models.ResourceSellerStatistics,
	Version:  1,
	Fields: []string{
		"id",
		"deleted",
		"updated_on_ts",
		"seller_id",
		"month",
		"total_invoiced",
		"total_collected",
		"activations",
	},
}

func NewSellerStatisticsResource(statistics store.SellerStatisticsRepository) delta.Syncer {
	return delta.NewResource(SellerStatisticsSchema, statistics.GetStatisticsForSeller, encodeSellerStatistics)
}

func encodeSellerStatistics(s models.SellerStatistics) ([]any, error) {
	return []any{
		s.ID,
		s.Deleted,
		delta.Timestamp(s.UpdatedOnUtc),
		s.SellerID,
		s.Month,
		delta.Money(s.TotalInvoiced),
		delta.Money(s.TotalCollected),
		s.Activations,
	}, nil
}
