package store

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database call is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Every Get*ForSeller method returns the non-deleted rows owned by the
// seller, ordered by id.

type OrderRepository interface {
	GetOrdersForSeller(ctx context.Context, sellerID int64) ([]models.Order, error)
}

type OrderItemRepository interface {
	GetOrderItemsForSeller(ctx context.Context, sellerID int64) ([]models.OrderItem, error)
}

type AddressRepository interface {
	GetAddressesForSeller(ctx context.Context, sellerID int64) ([]models.Address, error)
}

type CustomerRepository interface {
	GetCustomersForSeller(ctx context.Context, sellerID int64) ([]models.Customer, error)

	// GetCustomerAttributes returns the requested generic attributes of the
	// given customers keyed by customer id. Customers without any of the
	// keys are absent from the result.
	GetCustomerAttributes(ctx context.Context, customerIDs []int64, keys ...string) (map[int64]map[string]string, error)

	// GetCustomerInfo returns the system name and the requested attributes
	// of the given customers keyed by customer id.
	GetCustomerInfo(ctx context.Context, customerIDs []int64, keys ...string) (map[int64]models.CustomerInfo, error)
}

type SellerStatisticsRepository interface {
	GetStatisticsForSeller(ctx context.Context, sellerID int64) ([]models.SellerStatistics, error)
}

// InvoiceRepository does not filter on the deleted flag.
type InvoiceRepository interface {
	GetInvoicesForSeller(ctx context.Context, sellerID int64) ([]models.Invoice, error)
}

type ProductRepository interface {
	// GetPublishedProducts returns the catalog shared by every seller.
	GetPublishedProducts(ctx context.Context) ([]models.Product, error)
	GetProductCategoryIDs(ctx context.Context, productIDs []int64) (map[int64][]int64, error)
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
