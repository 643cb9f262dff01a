package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
)

// Storages groups the read-only repositories backing the sync resources.
type Storages struct {
	OrderRepository            OrderRepository
	OrderItemRepository        OrderItemRepository
	AddressRepository          AddressRepository
	CustomerRepository         CustomerRepository
	SellerStatisticsRepository SellerStatisticsRepository
	InvoiceRepository          InvoiceRepository
	ProductRepository          ProductRepository

	HealthChecker HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations when
// cfg.DB.Migrate is set and wires every repository to the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if cfg.DB.Migrate {
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires repositories to an already open connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		OrderRepository:            NewOrderRepository(db, logger),
		OrderItemRepository:        NewOrderItemRepository(db, logger),
		AddressRepository:          NewAddressRepository(db, logger),
		CustomerRepository:         NewCustomerRepository(db, logger),
		SellerStatisticsRepository: NewSellerStatisticsRepository(db, logger),
		InvoiceRepository:          NewInvoiceRepository(db, logger),
		ProductRepository:          NewProductRepository(db, logger),
		HealthChecker:              db,
		db:                         db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
