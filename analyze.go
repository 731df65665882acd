// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/arvados/longestinc/seqscan"
)

type analyzecmd struct {
	sequential bool
	batchArgs
	debugArgs
}

func (cmd *analyzecmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("format", "auto", "input `format`: raw (packed 32-bit little endian floats), npy, or auto (by file suffix)")
	preview := flags.Int("preview", 0, "print the first `N` values before analyzing")
	if !cmd.sequential {
		cmd.batchArgs.Flags(flags)
	}
	cmd.debugArgs.Flags(flags)
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() != 1 {
		err = errors.New("usage: " + prog + " [options] FILE\n\nFILE must contain tightly packed 32-bit little endian float values (or a .npy array)")
		return 2
	}
	cmd.debugArgs.Start()

	var analyser seqscan.Analyser = seqscan.Sequential{}
	if !cmd.sequential {
		analyser, err = cmd.batchArgs.Batched()
		if err != nil {
			return 1
		}
	}

	seq, err := readSequence(flags.Arg(0), *format)
	if err != nil {
		return 1
	}
	if *preview > 0 {
		fmt.Fprintf(stdout, "FloatSequence: %s\n", seq.Preview(*preview))
	}
	result, elapsed := timeAnalysis(analyser, seq)
	printResult(stdout, result, elapsed)
	return 0
}

func printResult(w io.Writer, result seqscan.Interval, elapsed time.Duration) {
	fmt.Fprintf(w, "Longest continuous increasing sequence:\n")
	fmt.Fprintf(w, "\tStart index: %d\n", result.Start)
	fmt.Fprintf(w, "\tEnd index: %d\n", result.End)
	fmt.Fprintf(w, "\tInterval length: %d\n", result.Len())
	fmt.Fprintf(w, "Compute time: %d ms\n", elapsed.Milliseconds())
}
