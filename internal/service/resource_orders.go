// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

// OrdersSchema is the record layout of the orders resource.
var OrdersSchema = models.Schema{
	Resource: models.ResourceOrders,
	Version:  1,
	Fields: []string{
		"id",
		"deleted",
		"updated_on_ts",
		"created_on_ts",
		"shipping_excl_tax",
		"discount",
		"custom_values",
		"status",
		"paid_date_ts",
		"customer_id",
		"customer_system_name",
		"customer_company",
		"customer_rif",
		"billing_address1",
		"billing_address2",
	},
}

// NewOrdersResource syncs the orders placed by the seller's customers.
// Customer data is attached in one batch after reconciliation so that only
// the orders actually sent pay for the lookup.
func NewOrdersResource(orders store.OrderRepository, customers store.CustomerRepository) delta.Syncer {
	return delta.NewResource(
		OrdersSchema,
		orders.GetOrdersForSeller,
		encodeOrder,
		delta.WithBeforeCompress(attachOrderCustomers(customers)),
	)
}

func attachOrderCustomers(customers store.CustomerRepository) delta.Transform[models.Order] {
	return func(ctx context.Context, sellerID int64, orders []models.Order) ([]models.Order, error) {
		info, err := customers.GetCustomerInfo(ctx, uniqueIDs(orders, func(o models.Order) int64 { return o.CustomerID }),
			models.CustomerAttributeCompany, models.CustomerAttributeRIF)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "attachOrderCustomers").
				Int64("seller_id", sellerID).
				Msg("failed to load customer info for orders")
			return nil, fmt.Errorf("error loading customer info: %w", err)
		}

		enriched := make([]models.Order, len(orders))
		for i, o := range orders {
			if c, ok := info[o.CustomerID]; ok {
				o.Customer = &c
			}
			enriched[i] = o
		}

		return enriched, nil
	}
}

func encodeOrder(o models.Order) ([]any, error) {
	if o.Customer == nil {
		return nil, fmt.Errorf("%w: order %d, customer %d", ErrMissingCustomerInfo, o.ID, o.CustomerID)
	}

	return []any{
		o.ID,
		o.Deleted,
		delta.Timestamp(o.UpdatedOnUtc),
		delta.Timestamp(o.CreatedOnUtc),
		delta.Money(o.OrderShippingExclTax),
		delta.Money(o.OrderDiscount),
		delta.NullableMap(o.CustomValues),
		int(o.OrderStatus),
		delta.NullableTimestamp(o.PaidDateUtc),
		o.CustomerID,
		delta.NullableString(o.Customer.SystemName),
		delta.NullableString(o.Customer.Attribute(models.CustomerAttributeCompany)),
		delta.NullableString(o.Customer.Attribute(models.CustomerAttributeRIF)),
		delta.NullableString(o.BillingAddress1),
		delta.NullableString(o.BillingAddress2),
	}, nil
}

// uniqueIDs collects the distinct ids returned by key in first-seen order.
func uniqueIDs[T any](items []T, key func(T) int64) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id := key(item)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
