// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

// Stitch combines per-chunk results, which must be ordered and cover
// the sequence contiguously, into the longest increasing run of the
// whole sequence.
//
// A chain is a run that is still open at the end of the previous
// chunk. It continues into the next chunk if the values on either side
// of the boundary are increasing, and continues past that chunk only if
// the chunk's leading run covers all of it.
func Stitch(seq *Sequence, results []ChunkResult) Interval {
	longest := Degenerate
	var chain Interval
	open := false
	for _, cr := range results {
		longest = Best(longest, cr.Internal)
		if open && increasing(seq.At(cr.Chunk.Start-1), seq.At(cr.Chunk.Start)) {
			if cr.Complete() {
				chain.End = cr.Chunk.End
				continue
			}
			chain.End = cr.Chunk.Start + cr.Leading
		}
		if open {
			longest = Best(longest, chain)
		}
		chain = Interval{cr.Chunk.End - cr.Trailing, cr.Chunk.End}
		open = true
	}
	if open {
		longest = Best(longest, chain)
	}
	return longest
}
