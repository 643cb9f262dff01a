package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

var ProductsSchema = models.Schema{
	Resource: models.ResourceProducts,
	Version:  1,
	Fields: []string{
		"id",
		"deleted",
		"updated_on_ts",
		"created_on_ts",
		"sku",
		"name",
		"price",
		"old_price",
		"stock_quantity",
		"published",
		"category_ids",
	},
}

// NewProductsResource syncs the published catalog. The catalog is shared by
// every seller, so the seller id only takes part in logging.
func NewProductsResource(products store.ProductRepository) delta.Syncer {
	source := func(ctx context.Context, _ int64) ([]models.Product, error) {
		return products.GetPublishedProducts(ctx)
	}

	return delta.NewResource(
		ProductsSchema,
		source,
		encodeProduct,
		delta.WithBeforeCompress(attachProductCategories(products)),
	)
}

func attachProductCategories(products store.ProductRepository) delta.Transform[models.Product] {
	return func(ctx context.Context, sellerID int64, items []models.Product) ([]models.Product, error) {
		categories, err := products.GetProductCategoryIDs(ctx, uniqueIDs(items, models.Product.GetID))
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "attachProductCategories").
				Int64("seller_id", sellerID).
				Msg("failed to load product categories")
			return nil, fmt.Errorf("error loading product categories: %w", err)
		}

		enriched := make([]models.Product, len(items))
		for i, p := range items {
			p.CategoryIDs = categories[p.ID]
			enriched[i] = p
		}

		return enriched, nil
	}
}

func encodeProduct(p models.Product) ([]any, error) {
	return []any{
		p.ID,
		p.Deleted,
		delta.Timestamp(p.UpdatedOnUtc),
		delta.Timestamp(p.CreatedOnUtc),
		delta.NullableString(p.Sku),
		p.Name,
		delta.Money(p.Price),
		delta.Money(p.OldPrice),
		p.StockQuantity,
		p.Published,
		delta.NullableIDs(p.CategoryIDs),
	}, nil
}
