package store

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/models"
)

type invoiceRepository struct {
	*DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	return &invoiceRepository{DB: db, logger: logger}
}

func (r *invoiceRepository) GetInvoicesForSeller(ctx context.Context, sellerID int64) ([]models.Invoice, error) {
	query, args, err := buildSelectInvoicesForSellerQuery(sellerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*invoiceRepository.GetInvoicesForSeller").Msg("failed to create query")
		return nil, err
	}

	return selectAll(ctx, r.DB, "*invoiceRepository.GetInvoicesForSeller", query, args,
		func(row rowScanner) (models.Invoice, error) {
			var i models.Invoice
			err := row.Scan(
				&i.ID,
				&i.Deleted,
				&i.CreatedOnUtc,
				&i.UpdatedOnUtc,
				&i.ExtID,
				&i.DocumentType,
				&i.Total,
				&i.Balance,
				&i.CustomerName,
				&i.CustomerID,
				&i.SellerID,
				&i.TaxPrinterNumber,
			)
			return i, err
		})
}
