package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnknownResource is returned for a resource with no registered
	// adapter.
	ErrUnknownResource = errors.New("unknown resource")
	// ErrMissingCustomerInfo is returned when an order reaches the encoder
	// without its customer data attached.
	ErrMissingCustomerInfo = errors.New("customer info was not attached to order")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrSyncFailed = errors.New("sync failed")

	ErrStorageNotConfigured = errors.New("storage is not configured")
)

// Client-side errors.
var (
	// ErrSchemaNotPublished is returned when the server does not list the
	// requested resource among its schemas.
	ErrSchemaNotPublished = errors.New("schema not published by server")
	// ErrSchemaVersionMismatch is returned when a response carries a schema
	// version the server does not publish.
	ErrSchemaVersionMismatch = errors.New("schema version mismatch")
	// ErrMalformedRecord is returned for a record that does not fit its
	// schema.
	ErrMalformedRecord = errors.New("malformed record")
)
