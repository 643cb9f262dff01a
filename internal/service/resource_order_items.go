package service

import (
	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

// OrderItemsSchema carries no id: clients cannot address single items and
// re-pull the whole resource on every sync.
var OrderItemsSchema = models.Schema{
	Resource: models.ResourceOrderItems,
	Version:  1,
	Fields: []string{
		"product_id",
		"unit_price_excl_tax",
		"unit_price_incl_tax",
		"quantity",
	},
}

// NewOrderItemsResource syncs the lines of the seller's live orders.
func NewOrderItemsResource(items store.OrderItemRepository) delta.Syncer {
	return delta.NewResource(OrderItemsSchema, items.GetOrderItemsForSeller, encodeOrderItem)
}

func encodeOrderItem(i models.OrderItem) ([]any, error) {
	return []any{
		i.ProductID,
		delta.Money(i.UnitPriceExclTax),
		delta.Money(i.UnitPriceInclTax),
		i.Quantity,
	}, nil
}
