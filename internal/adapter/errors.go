package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrHashMismatch is returned when a signed response fails verification.
	ErrHashMismatch = errors.New("response hash mismatch")
	// ErrUnexpectedResource is returned when the server answers for another
	// resource than the one requested.
	ErrUnexpectedResource = errors.New("response is for an unexpected resource")
	ErrDecodingResponse   = errors.New("error decoding response")
)
