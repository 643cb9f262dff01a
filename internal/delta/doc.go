// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package delta implements the delta-synchronization engine shared by every
// resource.
//
// A client sends the ids it currently holds and the server clock of its
// previous sync. The engine reconciles that against the authoritative set of
// items owned by the seller and answers with the records to upsert, encoded
// as compact positional arrays, and the ids to delete.
//
// The pieces, leaves first:
//   - [Reconcile] computes the upsert list and the delete set.
//   - [Encoder] flattens one item into a positional record; [EncodeAll]
//     enforces the schema arity and [Project] renders keyed records.
//   - [NewSyncResponse] wraps the result in the response envelope.
//   - [Resource] binds an item source, an optional enrichment step and an
//     encoder to the flow above and is what the service layer registers.
//
// The server keeps no sync state: every call recomputes the owned set, so a
// failed call can always be retried as a whole.
package delta
