// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"flag"
	"fmt"
	"io"

	"github.com/arvados/longestinc/seqscan"
)

// comparecmd runs both strategies on the same input and fails if
// they disagree.
type comparecmd struct {
	batchArgs
	debugArgs
}

func (cmd *comparecmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	randomSize := flags.Int("random", 0, "compare on `N` random values instead of reading a file")
	max := flags.Int("max", 1000, "random values are integers in [0, `max`]")
	seed := flags.Uint64("seed", 0, "random `seed` (0 = use current time)")
	format := flags.String("format", "auto", "input `format`: raw, npy, or auto (by file suffix)")
	cmd.batchArgs.Flags(flags)
	cmd.debugArgs.Flags(flags)
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if (*randomSize > 0) == (flags.NArg() == 1) || flags.NArg() > 1 {
		err = fmt.Errorf("usage: %s [options] {-random N | FILE}", prog)
		return 2
	}
	cmd.debugArgs.Start()

	batched, err := cmd.batchArgs.Batched()
	if err != nil {
		return 1
	}
	var seq *seqscan.Sequence
	if *randomSize > 0 {
		seq = randomSequence(*randomSize, *max, *seed)
	} else {
		seq, err = readSequence(flags.Arg(0), *format)
		if err != nil {
			return 1
		}
	}
	fmt.Fprintf(stdout, "FloatSequence: %s\n", seq.Preview(20))

	var results []seqscan.Interval
	for _, a := range []seqscan.Analyser{seqscan.Sequential{}, batched} {
		result, elapsed := timeAnalysis(a, seq)
		fmt.Fprintf(stdout, "\nUsing %s:\n", strategyName(a))
		printResult(stdout, result, elapsed)
		results = append(results, result)
	}
	if results[0] != results[1] {
		err = fmt.Errorf("results differ: cpu %v, parallel %v (batch size %d)", results[0], results[1], batched.BatchSize())
		return 1
	}
	return 0
}
