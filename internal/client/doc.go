// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync agent runtime.
//
// It wires the local store, the remote transport, the sync orchestrator and
// the cadence workers into a single process lifecycle.
package client
