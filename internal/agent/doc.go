// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent implements the headless background agent runtime.
//
// It wires local storage, the server adapter, client services, and the
// periodic sync worker into a single process lifecycle with graceful
// shutdown on OS signals.
package agent
