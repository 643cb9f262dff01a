// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/store"
	"github.com/MKhiriev/go-seller-sync/models"
)

var InvoicesSchema = models.Schema{
	Resource: models.ResourceInvoices,
	Version:  1,
	Fields: []string{
		"id",
		"deleted",
		"updated_on_ts",
		"ext_id",
		"document_type",
		"total",
		"created_on_ts",
		"customer_name",
		"customer_id",
		"seller_id",
		"balance",
		"tax_printer_number",
	},
}

// NewInvoicesResource syncs the seller's fiscal documents.
//
// Invoices are read without a deleted filter and always encoded with
// deleted=false, which existing clients rely on. A soft-deleted invoice
// about to be sent is logged as a warning.
func NewInvoicesResource(invoices store.InvoiceRepository) delta.Syncer {
	return delta.NewResource(
		InvoicesSchema,
		invoices.GetInvoicesForSeller,
		encodeInvoice,
		delta.WithBeforeCompress(warnDeletedInvoices),
	)
}

func warnDeletedInvoices(ctx context.Context, sellerID int64, invoices []models.Invoice) ([]models.Invoice, error) {
	log := logger.FromContext(ctx)
	for _, inv := range invoices {
		if inv.Deleted {
			log.Warn().
				Str("func", "warnDeletedInvoices").
				Int64("seller_id", sellerID).
				Int64("invoice_id", inv.ID).
				Msg("soft-deleted invoice is sent with deleted=false")
		}
	}
	return invoices, nil
}

func encodeInvoice(i models.Invoice) ([]any, error) {
	customerName := ""
	if i.CustomerName != nil {
		customerName = *i.CustomerName
	}

	return []any{
		i.ID,
		false,
		delta.Timestamp(i.UpdatedOnUtc),
		i.ExtID,
		i.DocumentType.String(),
		delta.Money(i.Total),
		delta.Timestamp(i.CreatedOnUtc),
		customerName,
		i.CustomerID,
		i.SellerID,
		delta.Money(i.Balance),
		delta.NullableString(i.TaxPrinterNumber),
	}, nil
}
