package store

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

type productRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	return &productRepository{DB: db, logger: logger}
}

func (r *productRepository) GetPublishedProducts(ctx context.Context) ([]models.Product, error) {
	query, args, err := buildSelectPublishedProductsQuery()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.GetPublishedProducts").Msg("failed to create query")
		return nil, err
	}

	return selectAll(ctx, r.DB, "*productRepository.GetPublishedProducts", query, args,
		func(row rowScanner) (models.Product, error) {
			var p models.Product
			err := row.Scan(
				&p.ID,
				&p.Deleted,
				&p.CreatedOnUtc,
				&p.UpdatedOnUtc,
				&p.Sku,
				&p.Name,
				&p.Price,
				&p.OldPrice,
				&p.StockQuantity,
				&p.Published,
			)
			return p, err
		})
}

type productCategory struct {
	productID  int64
	categoryID int64
}

// GetProductCategoryIDs returns category ids keyed by product id, in display
// order. Products without categories are absent from the result.
func (r *productRepository) GetProductCategoryIDs(ctx context.Context, productIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64)
	if len(productIDs) == 0 {
		return result, nil
	}

	query, args, err := buildSelectProductCategoriesQuery(productIDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.GetProductCategoryIDs").Msg("failed to create query")
		return nil, err
	}

	rows, err := selectAll(ctx, r.DB, "*productRepository.GetProductCategoryIDs", query, args,
		func(row rowScanner) (productCategory, error) {
			var pc productCategory
			err := row.Scan(&pc.productID, &pc.categoryID)
			return pc, err
		})
	if err != nil {
		return nil, err
	}

	for _, pc := range rows {
		result[pc.productID] = append(result[pc.productID], pc.categoryID)
	}

	return result, nil
}
