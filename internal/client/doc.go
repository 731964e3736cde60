// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It resolves the user object to talk to, runs ProcessData for every input
// through a bounded worker pool, prints the results in input order and keeps
// background workers such as the metrics listener alive for the duration of
// the run.
package client
