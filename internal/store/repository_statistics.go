package store

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

type sellerStatisticsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSellerStatisticsRepository(db *DB, logger *logger.Logger) SellerStatisticsRepository {
	return &sellerStatisticsRepository{DB: db, logger: logger}
}

func (r *sellerStatisticsRepository) GetStatisticsForSeller(ctx context.Context, sellerID int64) ([]models.SellerStatistics, error) {
	query, args, err := buildSelectStatisticsForSellerQuery(sellerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sellerStatisticsRepository.GetStatisticsForSeller").Msg("failed to create query")
		return nil, err
	}

	return selectAll(ctx, r.DB, "*sellerStatisticsRepository.GetStatisticsForSeller", query, args,
		func(row rowScanner) (models.SellerStatistics, error) {
			var s models.SellerStatistics
			err := row.Scan(
				&s.ID,
				&s.Deleted,
				&s.CreatedOnUtc,
				&s.UpdatedOnUtc,
				&s.SellerID,
				&s.Month,
				&s.TotalInvoiced,
				&s.TotalCollected,
				&s.Activations,
			)
			return s, err
		})
}
