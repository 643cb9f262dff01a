package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a response body when the
// server is configured with a hash key.
const HashHeader = "HashSHA256"

// hasherPools maps a hash key to a *sync.Pool of HMAC-SHA256 instances
// keyed with it. A process normally signs with one key only.
var hasherPools sync.Map

func hasherPool(hashKey string) *sync.Pool {
	if p, ok := hasherPools.Load(hashKey); ok {
		return p.(*sync.Pool)
	}

	p, _ := hasherPools.LoadOrStore(hashKey, &sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	})
	return p.(*sync.Pool)
}

func sum(data []byte, hashKey string) []byte {
	pool := hasherPool(hashKey)

	h := pool.Get().(hash.Hash)
	h.Reset()
	h.Write(data)
	s := h.Sum(nil)
	pool.Put(h)

	return s
}

// HashString returns the hex HMAC-SHA256 of data under hashKey.
//
//	sig := utils.HashString(body, "my-secret-key")
func HashString(data []byte, hashKey string) string {
	return hex.EncodeToString(sum(data, hashKey))
}

// VerifyHash reports whether expectedHex is the HMAC-SHA256 of data under
// hashKey. The comparison is constant-time.
func VerifyHash(data []byte, expectedHex, hashKey string) bool {
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false
	}

	return hmac.Equal(sum(data, hashKey), expected)
}
