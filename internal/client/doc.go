// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless client agent runtime.
//
// The agent syncs every configured resource once on start and then keeps
// the local SQLite mirror current through a periodic sync worker until the
// process receives a stop signal.
package client
