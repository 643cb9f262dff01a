package models

import "time"

// LocalSyncState is the client's bookkeeping for one resource: the server
// clock returned by the last successful sync.
type LocalSyncState struct {
	Resource     ResourceType
	LastUpdateTs *int64
	SyncedAt     time.Time
}

// LocalRecord is a mirrored record as stored by the client, rendered as a
// keyed JSON object using the resource's schema.
type LocalRecord struct {
	Resource ResourceType
	RecordID *int64
	Payload  []byte
}

// LocalApply is one sync response ready to be written to the client mirror.
type LocalApply struct {
	Resource   ResourceType
	Records    []LocalRecord
	ToDelete   []int64
	ReplaceAll bool
	ServerTs   int64
}
