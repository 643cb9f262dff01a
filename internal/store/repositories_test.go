package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

var (
	created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	updated = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestOrderRepository_GetOrdersForSeller(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepository(db, logger.Nop())

	rows := sqlmock.NewRows(orderColumns).
		AddRow(1, false, created, updated, "10.50", "0", []byte(`{"tracking":"X1"}`), 20, nil, 5, nil, nil, nil).
		AddRow(2, false, created, updated, "0", "1.25", nil, 30, updated, 5, 9, "Main St 1", nil)

	mock.ExpectQuery("FROM orders o").
		WithArgs(int64(42), false).
		WillReturnRows(rows)

	orders, err := repo.GetOrdersForSeller(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, int64(1), orders[0].ID)
	assert.True(t, decimal.RequireFromString("10.5").Equal(orders[0].OrderShippingExclTax))
	assert.Equal(t, map[string]any{"tracking": "X1"}, orders[0].CustomValues)
	assert.Equal(t, models.OrderStatusProcessing, orders[0].OrderStatus)
	assert.Nil(t, orders[0].PaidDateUtc)
	assert.Nil(t, orders[0].BillingAddressID)

	assert.Nil(t, orders[1].CustomValues)
	require.NotNil(t, orders[1].PaidDateUtc)
	assert.Equal(t, updated, *orders[1].PaidDateUtc)
	require.NotNil(t, orders[1].BillingAddressID)
	assert.Equal(t, int64(9), *orders[1].BillingAddressID)
	assert.Equal(t, "Main St 1", *orders[1].BillingAddress1)
	assert.Nil(t, orders[1].Customer)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetOrdersForSeller_BadCustomValues(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderRepository(db, logger.Nop())

	mock.ExpectQuery("FROM orders o").
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(1, false, created, updated, "0", "0", []byte(`not json`), 10, nil, 5, nil, nil, nil))

	_, err := repo.GetOrdersForSeller(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, ErrDecodingColumn)
}

func TestOrderItemRepository_GetOrderItemsForSeller(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOrderItemRepository(db, logger.Nop())

	mock.ExpectQuery("FROM order_items oi").
		WithArgs(int64(42), false).
		WillReturnRows(sqlmock.NewRows(orderItemColumns).
			AddRow(11, 1, 7, "9.99", "11.59", 3, created, updated))

	items, err := repo.GetOrderItemsForSeller(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, int64(7), items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "11.59", items[0].UnitPriceInclTax.StringFixed(2))
	assert.Equal(t, updated, items[0].UpdatedOnUtc)
}

func TestAddressRepository_GetAddressesForSeller(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAddressRepository(db, logger.Nop())

	mock.ExpectQuery("FROM addresses a").
		WithArgs(false, false, int64(42)).
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(4, false, created, updated, 5, "Ana", nil, "ana@example.com", nil, "Caracas", "Av. 1", nil, "1010", nil))

	addresses, err := repo.GetAddressesForSeller(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, addresses, 1)

	assert.Equal(t, int64(5), addresses[0].CustomerID)
	assert.Equal(t, "Ana", *addresses[0].FirstName)
	assert.Nil(t, addresses[0].LastName)
	assert.Equal(t, "Caracas", *addresses[0].City)
}

func TestCustomerRepository_GetCustomersForSeller(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectQuery("FROM customers").
		WithArgs(false, int64(42), "Registered", "Seller").
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(5, false, created, updated, "ana", "Ana", "Diaz", nil, nil, "V-1", "ana-sys", 42))

	customers, err := repo.GetCustomersForSeller(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, customers, 1)

	assert.Equal(t, "ana", *customers[0].Username)
	assert.Nil(t, customers[0].Email)
	assert.Equal(t, int64(42), customers[0].SellerID)
	assert.Nil(t, customers[0].Attributes)
}

func TestCustomerRepository_GetCustomerAttributes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectQuery("FROM generic_attributes").
		WithArgs(int64(5), int64(6), "company", "rif", customerAttributeKeyGroup).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id", "key", "value"}).
			AddRow(5, "company", "Old Co").
			AddRow(5, "company", "ACME").
			AddRow(5, "rif", "J-1").
			AddRow(6, "rif", ""))

	attrs, err := repo.GetCustomerAttributes(context.Background(), []int64{5, 6}, "company", "rif")
	require.NoError(t, err)

	assert.Equal(t, map[int64]map[string]string{
		5: {"company": "ACME", "rif": "J-1"},
		6: {"rif": ""},
	}, attrs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetCustomerAttributes_NothingToLoad(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	attrs, err := repo.GetCustomerAttributes(context.Background(), nil, "company")
	require.NoError(t, err)
	assert.Empty(t, attrs)

	attrs, err = repo.GetCustomerAttributes(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Empty(t, attrs)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetCustomerInfo(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCustomerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, system_name FROM customers").
		WithArgs(int64(5), int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "system_name"}).
			AddRow(5, "ana-sys").
			AddRow(6, nil))
	mock.ExpectQuery("FROM generic_attributes").
		WillReturnRows(sqlmock.NewRows([]string{"entity_id", "key", "value"}).
			AddRow(5, "company", "ACME"))

	infos, err := repo.GetCustomerInfo(context.Background(), []int64{5, 6}, "company")
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, "ana-sys", *infos[5].SystemName)
	assert.Equal(t, map[string]string{"company": "ACME"}, infos[5].Attributes)
	assert.Nil(t, infos[6].SystemName)
	assert.Nil(t, infos[6].Attributes)
}

func TestSellerStatisticsRepository_GetStatisticsForSeller(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSellerStatisticsRepository(db, logger.Nop())

	mock.ExpectQuery("FROM seller_statistics").
		WithArgs(false, int64(42)).
		WillReturnRows(sqlmock.NewRows(sellerStatisticsColumns).
			AddRow(8, false, created, updated, 42, 202401, "1500.00", "900.50", 12))

	stats, err := repo.GetStatisticsForSeller(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Equal(t, 202401, stats[0].Month)
	assert.Equal(t, "900.50", stats[0].TotalCollected.StringFixed(2))
	assert.Equal(t, 12, stats[0].Activations)
}

func TestInvoiceRepository_GetInvoicesForSeller(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInvoiceRepository(db, logger.Nop())

	mock.ExpectQuery("FROM invoices").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(invoiceColumns).
			AddRow(3, true, created, updated, "F-0003", 1, "100", "0", nil, 5, 42, "Z1A"))

	invoices, err := repo.GetInvoicesForSeller(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	assert.True(t, invoices[0].Deleted)
	assert.Equal(t, models.DocumentTypeCreditNote, invoices[0].DocumentType)
	assert.Nil(t, invoices[0].CustomerName)
	assert.Equal(t, "Z1A", *invoices[0].TaxPrinterNumber)
}

func TestProductRepository_GetPublishedProducts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("FROM products").
		WithArgs(false, true).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(7, false, created, updated, "SKU-7", "Widget", "12.00", "15.00", 4, true))

	products, err := repo.GetPublishedProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "SKU-7", *products[0].Sku)
	assert.True(t, products[0].Published)
	assert.Nil(t, products[0].CategoryIDs)
}

func TestProductRepository_GetProductCategoryIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProductRepository(db, logger.Nop())

	mock.ExpectQuery("FROM product_categories").
		WithArgs(int64(7), int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "category_id"}).
			AddRow(7, 3).
			AddRow(7, 1))

	categories, err := repo.GetProductCategoryIDs(context.Background(), []int64{7, 8})
	require.NoError(t, err)

	assert.Equal(t, map[int64][]int64{7: {3, 1}}, categories)

	empty, err := repo.GetProductCategoryIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepositories_QueryErrors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantTemporary bool
	}{
		{"serialization failure", pgError(pgerrcode.SerializationFailure), true},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), true},
		{"undefined table", pgError(pgerrcode.UndefinedTable), false},
		{"driver error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewCustomerRepository(db, logger.Nop())

			mock.ExpectQuery("FROM customers").WillReturnError(tt.err)

			_, err := repo.GetCustomersForSeller(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExecutingQuery)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.wantTemporary, errors.Is(err, ErrTemporarilyUnavailable))
		})
	}
}

func TestRepositories_RowIterationError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInvoiceRepository(db, logger.Nop())

	rows := sqlmock.NewRows(invoiceColumns).
		AddRow(3, false, created, updated, "F-0003", 0, "100", "0", "Ana", 5, 42, nil).
		RowError(0, pgError(pgerrcode.AdminShutdown))
	mock.ExpectQuery("FROM invoices").WillReturnRows(rows)

	_, err := repo.GetInvoicesForSeller(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRows)
	assert.ErrorIs(t, err, ErrTemporarilyUnavailable)
}

func TestRepositories_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSellerStatisticsRepository(db, logger.Nop())

	mock.ExpectQuery("FROM seller_statistics").
		WillReturnRows(sqlmock.NewRows(sellerStatisticsColumns).
			AddRow("not-an-id", false, created, updated, 42, 1, "0", "0", 0))

	_, err := repo.GetStatisticsForSeller(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestStorages_Close(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectClose()

	storages := NewStoragesFromDB(db, logger.Nop())
	require.NotNil(t, storages.OrderRepository)
	require.NotNil(t, storages.ProductRepository)
	assert.Equal(t, HealthChecker(db), storages.HealthChecker)

	require.NoError(t, storages.Close())
	require.NoError(t, (&Storages{}).Close())
}

var _ HealthChecker = (*sql.DB)(nil)
