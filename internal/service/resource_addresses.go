package service

import (
	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

var AddressesSchema = models.Schema{
	Resource: models.ResourceAddresses,
	Version:  1,
	Fields: []string{
		"id",
		"deleted",
		"updated_on_ts",
		"created_on_ts",
		"customer_id",
		"first_name",
		"last_name",
		"email",
		"company",
		"city",
		"address1",
		"address2",
		"zip_postal_code",
		"phone_number",
	},
}

// NewAddressesResource syncs the addresses of the seller's customers.
func NewAddressesResource(addresses store.AddressRepository) delta.Syncer {
	return delta.NewResource(AddressesSchema, addresses.GetAddressesForSeller, encodeAddress)
}

func encodeAddress(a models.Address) ([]any, error) {
	return []any{
		a.ID,
		a.Deleted,
		delta.Timestamp(a.UpdatedOnUtc),
		delta.Timestamp(a.CreatedOnUtc),
		a.CustomerID,
		delta.NullableString(a.FirstName),
		delta.NullableString(a.LastName),
		delta.NullableString(a.Email),
		delta.NullableString(a.Company),
		delta.NullableString(a.City),
		delta.NullableString(a.Address1),
		delta.NullableString(a.Address2),
		delta.NullableString(a.ZipPostalCode),
		delta.NullableString(a.PhoneNumber),
	}, nil
}
