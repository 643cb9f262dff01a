// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResourceType names a synchronizable resource. The value doubles as the
// URL segment of the resource's sync endpoint.
type ResourceType string

const (
	ResourceAddresses        ResourceType = "addresses"
	ResourceProducts         ResourceType = "products"
	ResourceOrders           ResourceType = "orders"
	ResourceOrderItems       ResourceType = "order-items"
	ResourceCustomers        ResourceType = "customers"
	ResourceSellerStatistics ResourceType = "seller-statistics"
	ResourceInvoices         ResourceType = "invoices"
)

// AllResources returns every resource type in the order clients are
// expected to pull them (parents before children).
func AllResources() []ResourceType {
	return []ResourceType{
		ResourceProducts,
		ResourceCustomers,
		ResourceAddresses,
		ResourceOrders,
		ResourceOrderItems,
		ResourceInvoices,
		ResourceSellerStatistics,
	}
}

// Schema describes the positional layout of a resource's compact records.
// Fields[i] is the name of the value found at index i of every record.
// Changing the order or the number of fields requires a Version bump.
type Schema struct {
	Resource ResourceType `json:"resource"`
	Version  int          `json:"schema_version"`
	Fields   []string     `json:"fields"`
}

// Arity returns the number of values in every record of this schema.
func (s Schema) Arity() int {
	return len(s.Fields)
}

// FieldIndex returns the position of the named field or -1.
func (s Schema) FieldIndex(name string) int {
	for i, f := range s.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// SyncResponse is the envelope returned by every sync endpoint.
//
// Counts are not stored: they are derived from DataToSave and DataToDelete
// when the response is serialized, so the two can never drift apart.
// Each element of DataToSave is either a positional record ([]any) or, when
// the request asked for a field projection, a keyed record (map[string]any).
type SyncResponse struct {
	Resource      ResourceType
	SchemaVersion int
	ServerTs      int64
	DataToSave    []any
	DataToDelete  []int64
}

// CountToSave returns the number of records the client must upsert.
func (r SyncResponse) CountToSave() int {
	return len(r.DataToSave)
}

// CountToDelete returns the number of ids the client must remove.
func (r SyncResponse) CountToDelete() int {
	return len(r.DataToDelete)
}

type syncResponseJSON struct {
	Resource      ResourceType `json:"resource"`
	SchemaVersion int          `json:"schema_version"`
	ServerTs      int64        `json:"server_ts"`
	CountToSave   int          `json:"count_to_save"`
	CountToDelete int          `json:"count_to_delete"`
	DataToSave    []any        `json:"data_to_save"`
	DataToDelete  []int64      `json:"data_to_delete"`
}

// MarshalJSON implements [json.Marshaler]. Empty collections are written as
// [] rather than null.
func (r SyncResponse) MarshalJSON() ([]byte, error) {
	out := syncResponseJSON{
		Resource:      r.Resource,
		SchemaVersion: r.SchemaVersion,
		ServerTs:      r.ServerTs,
		CountToSave:   r.CountToSave(),
		CountToDelete: r.CountToDelete(),
		DataToSave:    r.DataToSave,
		DataToDelete:  r.DataToDelete,
	}
	if out.DataToSave == nil {
		out.DataToSave = []any{}
	}
	if out.DataToDelete == nil {
		out.DataToDelete = []int64{}
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler]. Numbers inside records are
// decoded as [json.Number] so ids and money keep their exact value.
// A payload whose counts disagree with its data is rejected with
// [ErrCountMismatch].
func (r *SyncResponse) UnmarshalJSON(b []byte) error {
	var in syncResponseJSON

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&in); err != nil {
		return err
	}

	if in.CountToSave != len(in.DataToSave) || in.CountToDelete != len(in.DataToDelete) {
		return fmt.Errorf("%w: save %d/%d, delete %d/%d", ErrCountMismatch,
			in.CountToSave, len(in.DataToSave), in.CountToDelete, len(in.DataToDelete))
	}

	*r = SyncResponse{
		Resource:      in.Resource,
		SchemaVersion: in.SchemaVersion,
		ServerTs:      in.ServerTs,
		DataToSave:    in.DataToSave,
		DataToDelete:  in.DataToDelete,
	}

	return nil
}
