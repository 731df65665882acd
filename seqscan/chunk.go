// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

// ChunkResult is what AnalyzeChunk can determine about one chunk
// without looking at its neighbors.
type ChunkResult struct {
	Index int
	Chunk Interval

	// Best run that ends before the last element of the chunk, or
	// an empty interval if there is none. The run touching the end
	// of the chunk is reported only by Trailing, because it may
	// continue into the next chunk.
	Internal Interval

	Leading  int // length of the increasing run starting at Chunk.Start
	Trailing int // length of the increasing run ending at Chunk.End-1
}

// Complete reports whether the whole chunk is one increasing run.
func (cr ChunkResult) Complete() bool {
	return cr.Leading == cr.Chunk.Len()
}

// AnalyzeChunk examines seq[chunk.Start:chunk.End] only. It is safe to
// call concurrently on different (or the same) chunks.
func AnalyzeChunk(seq *Sequence, index int, chunk Interval) ChunkResult {
	cr := ChunkResult{
		Index:    index,
		Chunk:    chunk,
		Internal: Interval{chunk.Start, chunk.Start},
	}
	if chunk.Len() <= 0 {
		return cr
	}
	runStart := chunk.Start
	last := seq.At(chunk.Start)
	for i := chunk.Start + 1; i < chunk.End; i++ {
		v := seq.At(i)
		if !increasing(last, v) {
			if runStart == chunk.Start {
				cr.Leading = i - chunk.Start
			}
			if i-runStart > 1 {
				cr.Internal = Best(cr.Internal, Interval{runStart, i})
			}
			runStart = i
		}
		last = v
	}
	if runStart == chunk.Start {
		cr.Leading = chunk.Len()
	}
	cr.Trailing = chunk.End - runStart
	return cr
}
