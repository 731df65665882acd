// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

import (
	"fmt"
	"runtime"
)

// Analyser finds the longest strictly increasing run in a sequence.
// Implementations must agree with Scan on every input.
type Analyser interface {
	LongestIncreasing(seq *Sequence) Interval
}

// Sequential is the single-pass Analyser.
type Sequential struct{}

func (Sequential) LongestIncreasing(seq *Sequence) Interval {
	return Scan(seq)
}

// Batched splits the sequence into chunks, analyzes the chunks in
// parallel, and stitches the results together.
type Batched struct {
	batchSize int
	workers   int
}

// NewBatched returns a Batched analyser. If workers is zero or
// negative, it uses one worker per CPU.
func NewBatched(batchSize, workers int) (*Batched, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidBatchSize, batchSize)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Batched{batchSize: batchSize, workers: workers}, nil
}

func (b *Batched) BatchSize() int { return b.batchSize }
func (b *Batched) Workers() int   { return b.workers }

func (b *Batched) LongestIncreasing(seq *Sequence) Interval {
	return Stitch(seq, b.Chunks(seq))
}

// Chunks returns the result of AnalyzeChunk for each chunk of seq, in
// order.
func (b *Batched) Chunks(seq *Sequence) []ChunkResult {
	chunks, err := Partition(seq.Len(), b.batchSize)
	if err != nil {
		// batchSize was checked by NewBatched
		panic(err)
	}
	results := make([]ChunkResult, len(chunks))
	thr := throttle{Max: b.workers}
	for i, chunk := range chunks {
		i, chunk := i, chunk
		thr.Acquire()
		go func() {
			defer thr.Release()
			results[i] = AnalyzeChunk(seq, i, chunk)
		}()
	}
	thr.Wait()
	return results
}
