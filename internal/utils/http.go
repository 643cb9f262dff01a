package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status.
//
// It sets "Content-Type: application/json". If marshaling fails it responds
// with 500 Internal Server Error and returns a wrapped error.
//
// Returns the number of body bytes written.
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteSignedJSON(w, data, statusCode, "")
}

// WriteSignedJSON behaves like [WriteJSON] and, when hashKey is not empty,
// adds a [HashHeader] holding the HMAC-SHA256 of the uncompressed body.
func WriteSignedJSON(w http.ResponseWriter, data any, statusCode int, hashKey string) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if hashKey != "" {
		w.Header().Set(HashHeader, HashString(jsonData, hashKey))
	}
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
