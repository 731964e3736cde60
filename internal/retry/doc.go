// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry runs one logical call as a sequence of attempts.
//
// An [Engine] drives a [Job] under a [Strategy]. The strategy decides how
// many attempts are allowed and how long to wait between them; the job
// decides whether a failure is worth retrying. A job returning an error
// wrapped with [Abort] ends the call at once, whatever budget is left.
//
// Every call ends in exactly one of three ways besides success: the budget
// runs out ([ErrRetryFailed]), the job aborts ([ErrRetryAborted]), or the
// caller cancels ([ErrRetryCancelled]). All three are reported as an
// [*Error] carrying the last failure of the job.
//
// Attempts of one engine never overlap. Engines share nothing, so
// independent calls may run concurrently on separate engines.
package retry
