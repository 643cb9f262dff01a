// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the seller sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrServiceUnavailable] for 503, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-seller-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, authentication
// header management, response integrity checks and mapping transport-level
// errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SyncData posts the ids and timestamp held for req.Resource to the
	// resource's sync endpoint and returns the decoded envelope. The
	// envelope is rejected when its signature, counts or resource do not
	// match.
	SyncData(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// GetSchemas fetches the record layouts published by the server.
	GetSchemas(ctx context.Context) ([]models.Schema, error)

	// GetAppVersion returns the server's version string.
	GetAppVersion(ctx context.Context) (string, error)
}
