package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in HTTP headers or stored on the client side.
//
// SellerID is a parsed copy of the "sub" (subject) claim converted to int64.
// It is populated when a token is validated and identifies the seller on
// whose behalf every sync call runs.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// SellerID is the seller identifier extracted from the "sub" claim.
	SellerID int64 `json:"-"`
}

// GetSellerID extracts the seller identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetSellerID() (int64, error) {
	sellerIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting SellerID from token: %w", err)
	}

	sellerID, err := strconv.ParseInt(sellerIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting SellerID from token to int64: %w", err)
	}

	return sellerID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
