// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"flag"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"golang.org/x/crypto/blake2b"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type describecmd struct{}

func (cmd *describecmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("format", "auto", "input `format`: raw, npy, or auto (by file suffix)")
	preview := flags.Int("preview", 20, "print the first `N` values")
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

	seq, err := readSequence(flags.Arg(0), *format)
	if err != nil {
		return 1
	}
	hash, err := blake2b.New256(nil)
	if err != nil {
		return 1
	}
	_, err = seq.WriteTo(hash)
	if err != nil {
		return 1
	}
	fmt.Fprintf(stdout, "FloatSequence: %s\n", seq.Preview(*preview))
	fmt.Fprintf(stdout, "byte size: %d (%s)\n", seq.ByteSize(), humanize.IBytes(uint64(seq.ByteSize())))
	fmt.Fprintf(stdout, "blake2b-256: %x\n", hash.Sum(nil))
	if seq.Len() > 0 {
		x := make([]float64, seq.Len())
		for i := range x {
			x[i] = float64(seq.At(i))
		}
		fmt.Fprintf(stdout, "min: %g\nmax: %g\nmean: %g\n", floats.Min(x), floats.Max(x), stat.Mean(x, nil))
	}
	return 0
}
