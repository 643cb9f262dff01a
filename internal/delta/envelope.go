package delta

import "github.com/MKhiriev/go-seller-sync/models"

// NewSyncResponse wraps encoded records and the delete set into the response
// envelope tagged with the schema's resource and version. Counts are derived
// by the envelope itself when it is serialized.
func NewSyncResponse(schema models.Schema, serverTs int64, records []any, toDelete []int64) models.SyncResponse {
	if records == nil {
		records = []any{}
	}
	if toDelete == nil {
		toDelete = []int64{}
	}

	return models.SyncResponse{
		Resource:      schema.Resource,
		SchemaVersion: schema.Version,
		ServerTs:      serverTs,
		DataToSave:    records,
		DataToDelete:  toDelete,
	}
}
