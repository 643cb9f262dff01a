package models

import "time"

// Generic attribute keys read for customers.
const (
	CustomerAttributeCompany = "company"
	CustomerAttributeRIF     = "rif"
)

// Customer is a customer owned by a seller.
type Customer struct {
	ID      int64
	Deleted bool

	CreatedOnUtc time.Time
	UpdatedOnUtc time.Time

	Username     *string
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	IdentityCard *string
	SystemName   *string

	SellerID int64

	// Attributes holds generic attributes keyed by name. It is filled in a
	// single batch before encoding.
	Attributes map[string]string
}

func (c Customer) GetID() int64               { return c.ID }
func (c Customer) GetUpdatedOnUtc() time.Time { return c.UpdatedOnUtc }

// Attribute returns the named attribute or nil when it is absent or empty.
func (c Customer) Attribute(key string) *string {
	return attributeOrNil(c.Attributes, key)
}

// CustomerInfo is the slice of customer data joined into orders.
type CustomerInfo struct {
	ID         int64
	SystemName *string
	Attributes map[string]string
}

// Attribute returns the named attribute or nil when it is absent or empty.
func (c *CustomerInfo) Attribute(key string) *string {
	if c == nil {
		return nil
	}
	return attributeOrNil(c.Attributes, key)
}

func attributeOrNil(attributes map[string]string, key string) *string {
	v, ok := attributes[key]
	if !ok || v == "" {
		return nil
	}
	return &v
}
