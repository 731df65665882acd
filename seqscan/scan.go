// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

// Scan returns the longest strictly increasing run in seq, using a
// single sequential pass. It is the reference result for every other
// strategy.
func Scan(seq *Sequence) Interval {
	longest := Degenerate
	if seq.Len() == 0 {
		return longest
	}
	candidate := Interval{-1, -1}
	open := false
	last := seq.At(0)
	for i := 1; i < seq.Len(); i++ {
		v := seq.At(i)
		if increasing(last, v) {
			if !open {
				candidate.Start = i - 1
				open = true
			}
		} else if open {
			candidate.End = i
			open = false
			longest = Best(longest, candidate)
		}
		last = v
	}
	if open {
		candidate.End = seq.Len()
		longest = Best(longest, candidate)
	}
	return longest
}
