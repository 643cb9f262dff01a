// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	selectLocalRecordIDs = `
		SELECT record_id
		FROM sync_records
		WHERE resource = ? AND record_id IS NOT NULL
		ORDER BY record_id;`

	selectLocalRecords = `
		SELECT resource, record_id, payload
		FROM sync_records
		WHERE resource = ?
		ORDER BY record_id, rowid;`

	upsertLocalRecord = `
		INSERT INTO sync_records (resource, record_id, payload, synced_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (resource, record_id) DO UPDATE
		SET payload = excluded.payload,
			synced_at = excluded.synced_at;`

	insertLocalRecordWithoutID = `
		INSERT INTO sync_records (resource, record_id, payload, synced_at)
		VALUES (?, NULL, ?, ?);`

	deleteLocalRecord = `
		DELETE FROM sync_records
		WHERE resource = ? AND record_id = ?;`

	deleteAllLocalRecords = `
		DELETE FROM sync_records
		WHERE resource = ?;`

	selectLocalSyncState = `
		SELECT resource, last_update_ts, synced_at
		FROM sync_state
		WHERE resource = ?;`

	upsertLocalSyncState = `
		INSERT INTO sync_state (resource, last_update_ts, synced_at)
		VALUES (?, ?, ?)
		ON CONFLICT (resource) DO UPDATE
		SET last_update_ts = excluded.last_update_ts,
			synced_at = excluded.synced_at;`
)
