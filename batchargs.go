// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"flag"

	"github.com/arvados/longestinc/seqscan"
)

const defaultBatchSize = 10000

// batchArgs are the flags shared by commands that run the parallel
// strategy.
type batchArgs struct {
	batchSize int
	workers   int
}

func (b *batchArgs) Flags(flags *flag.FlagSet) {
	flags.IntVar(&b.batchSize, "batch-size", defaultBatchSize, "number of values per chunk in parallel mode (does not affect the result)")
	flags.IntVar(&b.workers, "workers", 0, "number of chunks to analyze concurrently (0 = one per CPU)")
}

func (b *batchArgs) Batched() (*seqscan.Batched, error) {
	return seqscan.NewBatched(b.batchSize, b.workers)
}

// debugArgs are the profiling flags shared by all commands.
type debugArgs struct {
	pprof    string
	pprofdir string
}

func (d *debugArgs) Flags(flags *flag.FlagSet) {
	flags.StringVar(&d.pprof, "pprof", "", "serve Go profile data and metrics at http://`[addr]:port`")
	flags.StringVar(&d.pprofdir, "pprof-dir", "", "write Go profile data to `directory` periodically")
}

func (d *debugArgs) Start() {
	if d.pprof != "" {
		serveDebug(d.pprof)
	}
	if d.pprofdir != "" {
		go writeProfilesPeriodically(d.pprofdir)
	}
}
