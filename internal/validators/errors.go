package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidIDs is returned when the id list holds an id below 1.
	ErrInvalidIDs = errors.New("ids must be a list of positive integers")
	// ErrInvalidLastUpdateTs is returned for a negative timestamp.
	ErrInvalidLastUpdateTs = errors.New("last_update_ts must be a non-negative epoch second")
	// ErrInvalidSellerID is returned when no seller is attached to the request.
	ErrInvalidSellerID = errors.New("invalid seller ID")
	// ErrInvalidResource is returned when the request names no resource.
	ErrInvalidResource = errors.New("resource is required")
)
