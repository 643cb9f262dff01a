package delta

import (
	"fmt"

	"github.com/MKhiriev/go-seller-sync/models"
)

// Encoder flattens one item into a positional record. The record must have
// exactly one value per field of the resource's schema, in schema order.
type Encoder[T any] func(T) ([]any, error)

// EncodeAll encodes items in order and checks every record against the
// schema arity. The first failure aborts the whole batch.
func EncodeAll[T any](schema models.Schema, encode Encoder[T], items []T) ([]any, error) {
	records := make([]any, 0, len(items))
	for i, item := range items {
		record, err := encode(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s record #%d: %w", ErrEncoding, schema.Resource, i, err)
		}
		if len(record) != schema.Arity() {
			return nil, fmt.Errorf("%w: %s record #%d has %d values, schema declares %d",
				ErrArityMismatch, schema.Resource, i, len(record), schema.Arity())
		}
		records = append(records, record)
	}

	return records, nil
}

// ValidateFields checks that every name is declared by schema.
func ValidateFields(schema models.Schema, fields []string) error {
	for _, f := range fields {
		if schema.FieldIndex(f) < 0 {
			return fmt.Errorf("%w: %q is not a field of %s", ErrUnknownField, f, schema.Resource)
		}
	}
	return nil
}

// Project renders positional records as keyed records holding only the
// requested fields. Records are expected to come from [EncodeAll].
func Project(schema models.Schema, records []any, fields []string) ([]any, error) {
	if err := ValidateFields(schema, fields); err != nil {
		return nil, err
	}

	indexes := make([]int, len(fields))
	for i, f := range fields {
		indexes[i] = schema.FieldIndex(f)
	}

	projected := make([]any, 0, len(records))
	for i, r := range records {
		record, ok := r.([]any)
		if !ok || len(record) != schema.Arity() {
			return nil, fmt.Errorf("%w: %s record #%d", ErrArityMismatch, schema.Resource, i)
		}

		keyed := make(map[string]any, len(fields))
		for j, f := range fields {
			keyed[f] = record[indexes[j]]
		}
		projected = append(projected, keyed)
	}

	return projected, nil
}
