// Package http implements the HTTP transport of the sync server.
//
// It wires the chi routes for the per-resource sync endpoints, schema
// discovery and the version endpoint, and the middleware in front of them:
// request tracing, access logging, gzip, the API switch and bearer-token
// authentication. Responses are signed with the configured hash key before
// compression.
package http
