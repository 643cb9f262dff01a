package store

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

type addressRepository struct {
	*DB
	logger *logger.Logger
}

func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	return &addressRepository{DB: db, logger: logger}
}

// GetAddressesForSeller returns addresses linked to the seller's live
// customers.
func (r *addressRepository) GetAddressesForSeller(ctx context.Context, sellerID int64) ([]models.Address, error) {
	query, args, err := buildSelectAddressesForSellerQuery(sellerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*addressRepository.GetAddressesForSeller").Msg("failed to create query")
		return nil, err
	}

	return selectAll(ctx, r.DB, "*addressRepository.GetAddressesForSeller", query, args,
		func(row rowScanner) (models.Address, error) {
			var a models.Address
			err := row.Scan(
				&a.ID,
				&a.Deleted,
				&a.CreatedOnUtc,
				&a.UpdatedOnUtc,
				&a.CustomerID,
				&a.FirstName,
				&a.LastName,
				&a.Email,
				&a.Company,
				&a.City,
				&a.Address1,
				&a.Address2,
				&a.ZipPostalCode,
				&a.PhoneNumber,
			)
			return a, err
		})
}
