package delta

import "errors"

var (
	// ErrSourceFailed wraps a failure of a resource's item source.
	ErrSourceFailed = errors.New("authoritative source failed")

	// ErrBeforeCompressFailed wraps a failure of a resource's enrichment step.
	ErrBeforeCompressFailed = errors.New("enrichment before encoding failed")

	// ErrBeforeCompressChangedItems is returned when an enrichment step adds,
	// drops or reorders items instead of only enriching them.
	ErrBeforeCompressChangedItems = errors.New("enrichment changed the set or order of items")

	// ErrEncoding wraps an encoder failure, e.g. a missing joined field.
	ErrEncoding = errors.New("error encoding record")

	// ErrArityMismatch is returned when an encoded record does not have the
	// number of values declared by its schema.
	ErrArityMismatch = errors.New("record arity does not match schema")

	// ErrUnknownField is returned when a projection names a field that the
	// schema does not declare.
	ErrUnknownField = errors.New("unknown field")
)
