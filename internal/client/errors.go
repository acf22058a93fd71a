// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrUnknownOperation is returned by [App.RunOnce] for an operation other
// than sync, push or pull.
var ErrUnknownOperation = errors.New("unknown sync operation")
