// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the reference server's REST API.
//
// It exposes the per-resource push and pull endpoints of the sync protocol
// and the version endpoint. Authentication, session approval, request
// tracing, access logging and response compression are handled here before
// requests reach the service layer.
package http
