// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool runs independent tasks with bounded concurrency.
type Pool struct {
	concurrency int
}

// NewPool returns a pool running at most concurrency tasks at once. Values
// below one mean one.
func NewPool(concurrency int) *Pool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pool{concurrency: concurrency}
}

// Concurrency returns the task limit of the pool.
func (p *Pool) Concurrency() int {
	return p.concurrency
}

// Result is the outcome of one task of [Map].
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// Map applies fn to every input on p and returns one result per input, in
// input order. A failing task does not stop the others. Tasks not started
// when ctx ends fail with the context error.
func Map[In, Out any](ctx context.Context, p *Pool, inputs []In, fn func(ctx context.Context, in In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(inputs))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, in := range inputs {
		results[i].Index = i
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, in)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
