// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"github.com/arvados/longestinc/seqscan"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// chunkscmd prints the per-chunk results that the parallel strategy
// stitches together.
type chunkscmd struct {
	batchArgs
}

func (cmd *chunkscmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("format", "auto", "input `format`: raw, npy, or auto (by file suffix)")
	cmd.batchArgs.Flags(flags)
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() != 1 {
		err = fmt.Errorf("usage: %s [options] FILE", prog)
		return 2
	}

	batched, err := cmd.batchArgs.Batched()
	if err != nil {
		return 1
	}
	seq, err := readSequence(flags.Arg(0), *format)
	if err != nil {
		return 1
	}
	results := batched.Chunks(seq)

	bufw := bufio.NewWriter(stdout)
	fmt.Fprintln(bufw, "chunk\tstart\tend\tleading\ttrailing\tinternal_start\tinternal_end")
	for _, cr := range results {
		fmt.Fprintf(bufw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n", cr.Index, cr.Chunk.Start, cr.Chunk.End, cr.Leading, cr.Trailing, cr.Internal.Start, cr.Internal.End)
	}
	err = bufw.Flush()
	if err != nil {
		return 1
	}
	complete := lo.Filter(results, func(cr seqscan.ChunkResult, _ int) bool { return cr.Complete() })
	log.Infof("%d chunks, %d entirely increasing, longest %v", len(results), len(complete), seqscan.Stitch(seq, results))
	return 0
}
