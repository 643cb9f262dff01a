package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

type orderRepository struct {
	*DB
	logger *logger.Logger
}

func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	return &orderRepository{DB: db, logger: logger}
}

func (r *orderRepository) GetOrdersForSeller(ctx context.Context, sellerID int64) ([]models.Order, error) {
	query, args, err := buildSelectOrdersForSellerQuery(sellerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.GetOrdersForSeller").Msg("failed to create query")
		return nil, err
	}

	return selectAll(ctx, r.DB, "*orderRepository.GetOrdersForSeller", query, args, scanOrder)
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o            models.Order
		customValues []byte
	)

	err := row.Scan(
		&o.ID,
		&o.Deleted,
		&o.CreatedOnUtc,
		&o.UpdatedOnUtc,
		&o.OrderShippingExclTax,
		&o.OrderDiscount,
		&customValues,
		&o.OrderStatus,
		&o.PaidDateUtc,
		&o.CustomerID,
		&o.BillingAddressID,
		&o.BillingAddress1,
		&o.BillingAddress2,
	)
	if err != nil {
		return models.Order{}, err
	}

	if len(customValues) > 0 {
		if err = json.Unmarshal(customValues, &o.CustomValues); err != nil {
			return models.Order{}, fmt.Errorf("%w: order %d custom_values: %w", ErrDecodingColumn, o.ID, err)
		}
	}

	return o, nil
}

type orderItemRepository struct {
	*DB
	logger *logger.Logger
}

func NewOrderItemRepository(db *DB, logger *logger.Logger) OrderItemRepository {
	return &orderItemRepository{DB: db, logger: logger}
}

func (r *orderItemRepository) GetOrderItemsForSeller(ctx context.Context, sellerID int64) ([]models.OrderItem, error) {
	query, args, err := buildSelectOrderItemsForSellerQuery(sellerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderItemRepository.GetOrderItemsForSeller").Msg("failed to create query")
		return nil, err
	}

	return selectAll(ctx, r.DB, "*orderItemRepository.GetOrderItemsForSeller", query, args,
		func(row rowScanner) (models.OrderItem, error) {
			var i models.OrderItem
			err := row.Scan(
				&i.ID,
				&i.OrderID,
				&i.ProductID,
				&i.UnitPriceExclTax,
				&i.UnitPriceInclTax,
				&i.Quantity,
				&i.CreatedOnUtc,
				&i.UpdatedOnUtc,
			)
			return i, err
		})
}
