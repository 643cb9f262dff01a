package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-seller-sync/internal/delta"
	"github.com/MKhiriev/go-seller-sync/internal/service"
	"github.com/MKhiriev/go-seller-sync/internal/store"
)

// errorStatusMap is checked in order; the first match wins. Retryable
// storage failures come before the generic storage errors they also wrap.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{delta.ErrUnknownField, http.StatusBadRequest},
	{service.ErrUnknownResource, http.StatusNotFound},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{store.ErrDecodingColumn, http.StatusInternalServerError},
	{service.ErrMissingCustomerInfo, http.StatusInternalServerError},
	{service.ErrSyncFailed, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
