// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

import "fmt"

// Partition divides [0, n) into consecutive chunks of batchSize
// elements. The last chunk may be shorter.
func Partition(n, batchSize int) ([]Interval, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidBatchSize, batchSize)
	}
	chunks := make([]Interval, 0, (n+batchSize-1)/batchSize)
	for start := 0; start < n; start += batchSize {
		end := n
		if n-start > batchSize {
			end = start + batchSize
		}
		chunks = append(chunks, Interval{start, end})
	}
	return chunks, nil
}
