package delta

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Value helpers used by encoders. Optional values that are absent or empty
// become an untyped nil, which is written as JSON null.

// Money renders an amount as a JSON number with its exact decimal digits.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Timestamp renders t as epoch seconds.
func Timestamp(t time.Time) int64 {
	return t.Unix()
}

// NullableTimestamp renders t as epoch seconds or null.
func NullableTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}

// NullableString renders s or null when s is nil or empty.
func NullableString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

// NullableMap renders m as a nested object or null when it is empty.
func NullableMap(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// NullableIDs renders ids as an array or null when there are none.
func NullableIDs(ids []int64) any {
	if len(ids) == 0 {
		return nil
	}
	return ids
}
