// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal viewer runtime.
//
// It binds the viewer to a signal-aware context and owns the process
// lifecycle of cmd/client.
package client
