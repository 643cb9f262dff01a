package store

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

type customerRepository struct {
	*DB
	logger *logger.Logger
}

func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	return &customerRepository{DB: db, logger: logger}
}

func (r *customerRepository) GetCustomersForSeller(ctx context.Context, sellerID int64) ([]models.Customer, error) {
	query, args, err := buildSelectCustomersForSellerQuery(sellerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerRepository.GetCustomersForSeller").Msg("failed to create query")
		return nil, err
	}

	return selectAll(ctx, r.DB, "*customerRepository.GetCustomersForSeller", query, args,
		func(row rowScanner) (models.Customer, error) {
			var c models.Customer
			err := row.Scan(
				&c.ID,
				&c.Deleted,
				&c.CreatedOnUtc,
				&c.UpdatedOnUtc,
				&c.Username,
				&c.FirstName,
				&c.LastName,
				&c.Email,
				&c.Phone,
				&c.IdentityCard,
				&c.SystemName,
				&c.SellerID,
			)
			return c, err
		})
}

type customerAttribute struct {
	customerID int64
	key        string
	value      string
}

// GetCustomerAttributes loads attributes for all customerIDs in one query.
// When a key is stored twice for a customer the last row wins.
func (r *customerRepository) GetCustomerAttributes(ctx context.Context, customerIDs []int64, keys ...string) (map[int64]map[string]string, error) {
	result := make(map[int64]map[string]string)
	if len(customerIDs) == 0 || len(keys) == 0 {
		return result, nil
	}

	query, args, err := buildSelectCustomerAttributesQuery(customerIDs, keys)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerRepository.GetCustomerAttributes").Msg("failed to create query")
		return nil, err
	}

	rows, err := selectAll(ctx, r.DB, "*customerRepository.GetCustomerAttributes", query, args,
		func(row rowScanner) (customerAttribute, error) {
			var a customerAttribute
			err := row.Scan(&a.customerID, &a.key, &a.value)
			return a, err
		})
	if err != nil {
		return nil, err
	}

	for _, a := range rows {
		if result[a.customerID] == nil {
			result[a.customerID] = make(map[string]string, len(keys))
		}
		result[a.customerID][a.key] = a.value
	}

	return result, nil
}

func (r *customerRepository) GetCustomerInfo(ctx context.Context, customerIDs []int64, keys ...string) (map[int64]models.CustomerInfo, error) {
	result := make(map[int64]models.CustomerInfo, len(customerIDs))
	if len(customerIDs) == 0 {
		return result, nil
	}

	query, args, err := buildSelectCustomerSystemNamesQuery(customerIDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerRepository.GetCustomerInfo").Msg("failed to create query")
		return nil, err
	}

	infos, err := selectAll(ctx, r.DB, "*customerRepository.GetCustomerInfo", query, args,
		func(row rowScanner) (models.CustomerInfo, error) {
			var c models.CustomerInfo
			err := row.Scan(&c.ID, &c.SystemName)
			return c, err
		})
	if err != nil {
		return nil, err
	}

	attributes, err := r.GetCustomerAttributes(ctx, customerIDs, keys...)
	if err != nil {
		return nil, err
	}

	for _, info := range infos {
		info.Attributes = attributes[info.ID]
		result[info.ID] = info
	}

	return result, nil
}
