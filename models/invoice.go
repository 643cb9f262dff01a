package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType classifies fiscal documents.
type DocumentType int

const (
	DocumentTypeInvoice DocumentType = iota
	DocumentTypeCreditNote
	DocumentTypeDebitNote
	DocumentTypeDeliveryNote
)

var documentTypeNames = map[DocumentType]string{
	DocumentTypeInvoice:      "invoice",
	DocumentTypeCreditNote:   "credit_note",
	DocumentTypeDebitNote:    "debit_note",
	DocumentTypeDeliveryNote: "delivery_note",
}

// String returns the wire name of the document type.
func (d DocumentType) String() string {
	if name, ok := documentTypeNames[d]; ok {
		return name
	}
	return "unknown"
}

// Invoice is a fiscal document issued by a seller.
type Invoice struct {
	ID      int64
	Deleted bool

	CreatedOnUtc time.Time
	UpdatedOnUtc time.Time

	ExtID            string
	DocumentType     DocumentType
	Total            decimal.Decimal
	Balance          decimal.Decimal
	CustomerName     *string
	CustomerID       int64
	SellerID         int64
	TaxPrinterNumber *string
}

func (i Invoice) GetID() int64               { return i.ID }
func (i Invoice) GetUpdatedOnUtc() time.Time { return i.UpdatedOnUtc }
