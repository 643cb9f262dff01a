package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus mirrors the platform's order status codes.
type OrderStatus int

const (
	OrderStatusPending    OrderStatus = 10
	OrderStatusProcessing OrderStatus = 20
	OrderStatusComplete   OrderStatus = 30
	OrderStatusCancelled  OrderStatus = 40
)

// Order is a seller-visible order as read from the platform database.
// Customer is nil until the orders resource attaches it before encoding.
type Order struct {
	ID      int64
	Deleted bool

	CreatedOnUtc time.Time
	UpdatedOnUtc time.Time

	OrderShippingExclTax decimal.Decimal
	OrderDiscount        decimal.Decimal
	CustomValues         map[string]any
	OrderStatus          OrderStatus
	PaidDateUtc          *time.Time

	CustomerID int64
	Customer   *CustomerInfo

	BillingAddressID *int64
	BillingAddress1  *string
	BillingAddress2  *string
}

func (o Order) GetID() int64               { return o.ID }
func (o Order) GetUpdatedOnUtc() time.Time { return o.UpdatedOnUtc }

// OrderItem is a line of an order. It has no timestamp of its own; the
// parent order's update time stands in for it.
type OrderItem struct {
	ID      int64
	OrderID int64

	ProductID        int64
	UnitPriceExclTax decimal.Decimal
	UnitPriceInclTax decimal.Decimal
	Quantity         int

	CreatedOnUtc time.Time
	UpdatedOnUtc time.Time
}

func (i OrderItem) GetID() int64               { return i.ID }
func (i OrderItem) GetUpdatedOnUtc() time.Time { return i.UpdatedOnUtc }
