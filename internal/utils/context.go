// Package utils holds small helpers shared by the server and the client:
// typed context keys, JSON response writing, response signing, the
// resty-based HTTP client, JWT handling and timestamp conversion.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by
// this package cannot collide with string keys set elsewhere.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SellerIDCtxKey is the key under which the auth middleware stores the
// authenticated seller's id.
//
//	ctx := context.WithValue(ctx, utils.SellerIDCtxKey, int64(42))
var SellerIDCtxKey = contextKey("sellerID")

// GetSellerIDFromContext returns the seller id stored under
// [SellerIDCtxKey]. ok is false when the value is missing or is not an
// int64.
func GetSellerIDFromContext(ctx context.Context) (int64, bool) {
	sellerID, ok := ctx.Value(SellerIDCtxKey).(int64)
	return sellerID, ok
}
