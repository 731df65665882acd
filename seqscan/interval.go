// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

import "fmt"

// Interval represents [Start, End)
type Interval struct {
	Start int // Inclusive
	End   int // Exclusive
}

// Degenerate is the result reported when a sequence has no increasing
// run of two or more elements, including the empty sequence.
var Degenerate = Interval{0, 1}

func (iv Interval) Len() int {
	return iv.End - iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// Best returns cand if it is longer than cur, or the same length and
// starts earlier. Otherwise it returns cur.
//
// Since runs never share a start index, the result does not depend on
// the order in which candidates are offered.
func Best(cur, cand Interval) Interval {
	if cand.Len() > cur.Len() || (cand.Len() == cur.Len() && cand.Start < cur.Start) {
		return cand
	}
	return cur
}

// increasing reports whether v extends a run ending in prev. NaN
// compares false both ways, so it always breaks a run.
func increasing(prev, v float32) bool {
	return v > prev
}
