// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package modelsync implements the entity-agnostic record synchronization
// protocol shared by every synced record type.
//
// The package is built around three pieces:
//
//   - [Coordinator] runs the push and pull algorithms against any
//     [SynchronizableRepository]. Push uploads every PENDING record in one
//     call and reconciles the per-record outcome into DONE or INVALID with a
//     single status write. Pull fetches remote changes page by page, upserting
//     each page before the [CursorStore] is advanced, so a crash between the
//     two steps only causes a harmless re-fetch.
//   - [EntitySync] binds one record type to the coordinator: its repository,
//     cursor store, remote [Transport] and [Config]. Sync runs push and pull
//     concurrently and reports the failures of both once both have settled.
//   - [ModelSync] is the non-generic view of an [EntitySync] consumed by the
//     orchestrator that owns the list of entities and their schedule.
//
// Contract violations by the remote service (an unknown record id in a
// validation error, a malformed pull page) are reported as errors wrapping
// [ErrProtocolViolation] and leave local state untouched.
package modelsync
