// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

import (
	"math"

	"gopkg.in/check.v1"
)

type chunkSuite struct{}

var _ = check.Suite(&chunkSuite{})

func (s *chunkSuite) TestPartition(c *check.C) {
	for _, trial := range []struct {
		n         int
		batchSize int
		out       []Interval
	}{
		{0, 5, []Interval{}},
		{10, 5, []Interval{{0, 5}, {5, 10}}},
		{11, 5, []Interval{{0, 5}, {5, 10}, {10, 11}}},
		{3, 1, []Interval{{0, 1}, {1, 2}, {2, 3}}},
		{3, 1024, []Interval{{0, 3}}},
		{5, math.MaxInt32, []Interval{{0, 5}}},
	} {
		c.Logf("=== %v", trial)
		out, err := Partition(trial.n, trial.batchSize)
		c.Check(err, check.IsNil)
		c.Check(out, check.DeepEquals, trial.out)
	}
	for _, batchSize := range []int{0, -3} {
		_, err := Partition(10, batchSize)
		c.Check(err, check.ErrorMatches, `invalid batch size: -?\d+ \(must be positive\)`)
	}
}

func (s *chunkSuite) TestAnalyzeChunk(c *check.C) {
	seq := New([]float32{1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 11, 11})
	c.Check(AnalyzeChunk(seq, 0, Interval{0, 5}), check.DeepEquals, ChunkResult{
		Index:    0,
		Chunk:    Interval{0, 5},
		Internal: Interval{0, 0},
		Leading:  1,
		Trailing: 3,
	})
	c.Check(AnalyzeChunk(seq, 1, Interval{5, 10}), check.DeepEquals, ChunkResult{
		Index:    1,
		Chunk:    Interval{5, 10},
		Internal: Interval{5, 5},
		Leading:  5,
		Trailing: 5,
	})
	c.Check(AnalyzeChunk(seq, 2, Interval{10, 15}), check.DeepEquals, ChunkResult{
		Index:    2,
		Chunk:    Interval{10, 15},
		Internal: Interval{10, 13},
		Leading:  3,
		Trailing: 1,
	})
}

func (s *chunkSuite) TestAnalyzeChunkEdges(c *check.C) {
	seq := New([]float32{0, 1, 2, 3, 1, 2, 0, 5})

	// must not look at seq[1] when the chunk starts at 2
	cr := AnalyzeChunk(seq, 1, Interval{2, 4})
	c.Check(cr.Leading, check.Equals, 2)
	c.Check(cr.Trailing, check.Equals, 2)
	c.Check(cr.Internal.Len(), check.Equals, 0)
	c.Check(cr.Complete(), check.Equals, true)

	cr = AnalyzeChunk(seq, 7, Interval{7, 8})
	c.Check(cr.Leading, check.Equals, 1)
	c.Check(cr.Trailing, check.Equals, 1)
	c.Check(cr.Complete(), check.Equals, true)

	// leading run is also an internal candidate, trailing run is not
	cr = AnalyzeChunk(seq, 0, Interval{0, 8})
	c.Check(cr.Leading, check.Equals, 4)
	c.Check(cr.Trailing, check.Equals, 2)
	c.Check(cr.Internal, check.Equals, Interval{0, 4})
	c.Check(cr.Complete(), check.Equals, false)
}

func (s *chunkSuite) TestStitch(c *check.C) {
	c.Check(Stitch(New(nil), nil), check.Equals, Interval{0, 1})

	seq := New([]float32{5, 1, 2, 3, 4, 5, 6, 7, 8, 0, 1, 2})
	for _, batchSize := range []int{1, 2, 3, 4, 100} {
		chunks, err := Partition(seq.Len(), batchSize)
		c.Assert(err, check.IsNil)
		var results []ChunkResult
		for i, chunk := range chunks {
			results = append(results, AnalyzeChunk(seq, i, chunk))
		}
		c.Check(Stitch(seq, results), check.Equals, Interval{1, 9}, check.Commentf("batch %d", batchSize))
	}
}

func (s *chunkSuite) TestBatchedChunks(c *check.C) {
	b, err := NewBatched(4, 2)
	c.Assert(err, check.IsNil)
	results := b.Chunks(New([]float32{1, 2, 3, 4, 5, 4, 3, 2, 1, 2}))
	c.Assert(results, check.HasLen, 3)
	for i, cr := range results {
		c.Check(cr.Index, check.Equals, i)
	}
	c.Check(results[0].Complete(), check.Equals, true)
	c.Check(results[1].Leading, check.Equals, 1)
	c.Check(results[1].Trailing, check.Equals, 1)
	c.Check(results[2].Chunk, check.Equals, Interval{8, 10})
	c.Check(results[2].Trailing, check.Equals, 2)
}

func (s *chunkSuite) TestBest(c *check.C) {
	c.Check(Best(Interval{0, 1}, Interval{4, 6}), check.Equals, Interval{4, 6})
	c.Check(Best(Interval{4, 6}, Interval{0, 2}), check.Equals, Interval{0, 2})
	c.Check(Best(Interval{0, 2}, Interval{4, 6}), check.Equals, Interval{0, 2})
	c.Check(Best(Interval{0, 3}, Interval{4, 6}), check.Equals, Interval{0, 3})
	c.Check(Best(Interval{0, 1}, Interval{3, 4}), check.Equals, Interval{0, 1})
	c.Check(Interval{2, 13}.String(), check.Equals, "[2,13)")
}
