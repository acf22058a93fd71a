// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the reference server's HTTP listener and shuts it down
// gracefully on SIGTERM or SIGINT.
package server
