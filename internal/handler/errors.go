// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// configured. It is fatal in webhook mode; in polling mode the caller runs
// without an HTTP server.
var ErrNoHandlersAreCreated = errors.New("no handlers are created")
