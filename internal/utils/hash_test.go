// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testHashKey = "test-secret-key"

func referenceHMAC(key string, data []byte) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return mac.Sum(nil)
}

func TestHashString(t *testing.T) {
	data := []byte(`{"count_to_save":0,"count_to_delete":0}`)

	sum1 := HashString(data, testHashKey)
	sum2 := HashString(data, testHashKey)

	assert.Equal(t, sum1, sum2, "hash must be deterministic")
	assert.Equal(t, hex.EncodeToString(referenceHMAC(testHashKey, data)), sum1)
}

func TestHashString_DifferentKeys(t *testing.T) {
	data := []byte("payload")

	assert.NotEqual(t, HashString(data, "key-one"), HashString(data, "key-two"))
	assert.Equal(t, hex.EncodeToString(referenceHMAC("key-two", data)), HashString(data, "key-two"))
}

func TestHashString_Concurrent(t *testing.T) {
	data := []byte("concurrent body")
	want := hex.EncodeToString(referenceHMAC(testHashKey, data))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, HashString(data, testHashKey))
		}()
	}
	wg.Wait()
}

func TestVerifyHash(t *testing.T) {
	data := []byte(`{"resource":"orders"}`)
	good := HashString(data, testHashKey)

	tests := []struct {
		name     string
		data     []byte
		expected string
		key      string
		want     bool
	}{
		{name: "valid", data: data, expected: good, key: testHashKey, want: true},
		{name: "tampered body", data: []byte(`{"resource":"invoices"}`), expected: good, key: testHashKey},
		{name: "wrong key", data: data, expected: good, key: "other"},
		{name: "not hex", data: data, expected: "zz", key: testHashKey},
		{name: "empty", data: data, expected: "", key: testHashKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyHash(tt.data, tt.expected, tt.key))
		})
	}
}
