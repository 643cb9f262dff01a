package models

import "time"

// Address belongs to a customer and, through it, to a seller.
type Address struct {
	ID      int64
	Deleted bool

	CreatedOnUtc time.Time
	UpdatedOnUtc time.Time

	CustomerID int64

	FirstName     *string
	LastName      *string
	Email         *string
	Company       *string
	City          *string
	Address1      *string
	Address2      *string
	ZipPostalCode *string
	PhoneNumber   *string
}

func (a Address) GetID() int64               { return a.ID }
func (a Address) GetUpdatedOnUtc() time.Time { return a.UpdatedOnUtc }
