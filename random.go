// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/arvados/longestinc/seqscan"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type randomcmd struct{}

func (cmd *randomcmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	size := flags.Int("n", 1000000, "number of values to generate")
	max := flags.Int("max", 1000, "values are integers in [0, `max`]")
	seed := flags.Uint64("seed", 0, "random `seed` (0 = use current time)")
	outputFilename := flags.String("o", "-", "output `file` (suffix .gz to compress)")
	format := flags.String("format", "auto", "output `format`: raw, npy, or auto (by file suffix)")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() > 0 {
		err = fmt.Errorf("errant command line arguments after parsed flags: %v", flags.Args())
		return 2
	} else if *size < 0 || *max < 0 {
		err = errors.New("-n and -max must not be negative")
		return 2
	}

	seq := randomSequence(*size, *max, *seed)
	err = writeSequence(seq, *outputFilename, *format, stdout)
	if err != nil {
		return 1
	}
	return 0
}

// randomSequence returns n values drawn uniformly from the integers
// in [0, max].
func randomSequence(n, max int, seed uint64) *seqscan.Sequence {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infof("generating %d random values in [0, %d], seed %d", n, max, seed)
	dist := distuv.Uniform{Min: 0, Max: float64(max) + 1, Src: rand.NewSource(seed)}
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(math.Min(math.Floor(dist.Rand()), float64(max)))
	}
	return seqscan.New(values)
}
