package models

import "strings"

// SyncRequest is the body of a sync call plus the identity of the caller.
//
// SellerID and Resource never come from the body: the transport layer fills
// them from the authenticated token and the route.
type SyncRequest struct {
	SellerID int64        `json:"-" validate:"gt=0"`
	Resource ResourceType `json:"-" validate:"required"`

	// IDsInDB are the ids the client currently persists for Resource.
	IDsInDB []int64 `json:"ids" validate:"dive,gt=0"`

	// LastUpdateTs is the epoch-seconds timestamp of the previous sync.
	// Nil requests a full resync.
	LastUpdateTs *int64 `json:"last_update_ts" validate:"omitempty,gte=0"`

	// Fields is an optional comma-separated projection. When set the
	// response carries keyed records instead of positional ones.
	Fields *string `json:"fields,omitempty"`
}

// FieldList splits Fields into trimmed, non-empty names.
func (r SyncRequest) FieldList() []string {
	if r.Fields == nil {
		return nil
	}

	var fields []string
	for _, f := range strings.Split(*r.Fields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
