// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arvados/longestinc/seqscan"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/pgzip"
	"github.com/kshedden/gonpy"
	log "github.com/sirupsen/logrus"
)

// fileFormat returns "npy" or "raw" for the given filename, unless
// format is already one of those.
func fileFormat(fnm, format string) (string, error) {
	switch format {
	case "raw", "npy":
		return format, nil
	case "", "auto":
		if strings.HasSuffix(strings.TrimSuffix(fnm, ".gz"), ".npy") {
			return "npy", nil
		}
		return "raw", nil
	default:
		return "", fmt.Errorf("unknown format %q (expected auto, raw, or npy)", format)
	}
}

func readSequence(fnm, format string) (*seqscan.Sequence, error) {
	format, err := fileFormat(fnm, format)
	if err != nil {
		return nil, err
	}
	f, err := zopen(fnm)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var seq *seqscan.Sequence
	switch format {
	case "npy":
		seq, err = decodeNumpy(f)
	default:
		seq, err = seqscan.Decode(bufio.NewReaderSize(f, 4*1024*1024))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnm, err)
	}
	log.Infof("read %s: %d values, byte size %s", fnm, seq.Len(), humanize.IBytes(uint64(seq.ByteSize())))
	return seq, nil
}

func decodeNumpy(r io.Reader) (*seqscan.Sequence, error) {
	npy, err := gonpy.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", seqscan.ErrMalformedInput, err)
	}
	if len(npy.Shape) != 1 {
		return nil, fmt.Errorf("%w: expecting 1-dimensional array, got shape %v", seqscan.ErrMalformedInput, npy.Shape)
	}
	values, err := npy.GetFloat32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", seqscan.ErrMalformedInput, err)
	}
	return seqscan.New(values), nil
}

// writeSequence writes seq to fnm ("-" for stdout) in the given format,
// compressing if fnm ends in ".gz".
func writeSequence(seq *seqscan.Sequence, fnm, format string, stdout io.Writer) error {
	format, err := fileFormat(fnm, format)
	if err != nil {
		return err
	}
	var output io.WriteCloser
	if fnm == "-" {
		output = nopCloser{stdout}
	} else {
		output, err = os.OpenFile(fnm, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			return err
		}
		defer output.Close()
	}
	bufw := bufio.NewWriterSize(output, 4*1024*1024)
	var w io.Writer = bufw
	var gzw *pgzip.Writer
	if strings.HasSuffix(fnm, ".gz") {
		gzw = pgzip.NewWriter(bufw)
		w = gzw
	}
	switch format {
	case "npy":
		err = encodeNumpy(w, seq)
	default:
		_, err = seq.WriteTo(w)
	}
	if err != nil {
		return err
	}
	if gzw != nil {
		err = gzw.Close()
		if err != nil {
			return err
		}
	}
	err = bufw.Flush()
	if err != nil {
		return err
	}
	return output.Close()
}

func encodeNumpy(w io.Writer, seq *seqscan.Sequence) error {
	npw, err := gonpy.NewWriter(nopCloser{w})
	if err != nil {
		return fmt.Errorf("gonpy.NewWriter: %w", err)
	}
	npw.Shape = []int{seq.Len()}
	return npw.WriteFloat32(seq.Values())
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
