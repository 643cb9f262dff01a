package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

var CustomersSchema = models.Schema{
	Resource: models.ResourceCustomers,
	Version:  1,
	Fields: []string{
		"id",
		"deleted",
		"updated_on_ts",
		"created_on_ts",
		"username",
		"first_name",
		"last_name",
		"email",
		"phone",
		"identity_card",
		"seller_id",
		"system_name",
		"company",
		"rif",
	},
}

// NewCustomersResource syncs the seller's customers together with their
// company and rif attributes.
func NewCustomersResource(customers store.CustomerRepository) delta.Syncer {
	return delta.NewResource(
		CustomersSchema,
		customers.GetCustomersForSeller,
		encodeCustomer,
		delta.WithBeforeCompress(attachCustomerAttributes(customers)),
	)
}

func attachCustomerAttributes(customers store.CustomerRepository) delta.Transform[models.Customer] {
	return func(ctx context.Context, sellerID int64, items []models.Customer) ([]models.Customer, error) {
		attributes, err := customers.GetCustomerAttributes(ctx, uniqueIDs(items, models.Customer.GetID),
			models.CustomerAttributeCompany, models.CustomerAttributeRIF)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "attachCustomerAttributes").
				Int64("seller_id", sellerID).
				Msg("failed to load customer attributes")
			return nil, fmt.Errorf("error loading customer attributes: %w", err)
		}

		enriched := make([]models.Customer, len(items))
		for i, c := range items {
			c.Attributes = attributes[c.ID]
			enriched[i] = c
		}

		return enriched, nil
	}
}

func encodeCustomer(c models.Customer) ([]any, error) {
	return []any{
		c.ID,
		c.Deleted,
		delta.Timestamp(c.UpdatedOnUtc),
		delta.Timestamp(c.CreatedOnUtc),
		delta.NullableString(c.Username),
		delta.NullableString(c.FirstName),
		delta.NullableString(c.LastName),
		delta.NullableString(c.Email),
		delta.NullableString(c.Phone),
		delta.NullableString(c.IdentityCard),
		c.SellerID,
		delta.NullableString(c.SystemName),
		delta.NullableString(c.Attribute(models.CustomerAttributeCompany)),
		delta.NullableString(c.Attribute(models.CustomerAttributeRIF)),
	}, nil
}
