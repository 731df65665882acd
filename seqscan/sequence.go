// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const valueSize = 4

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrInvalidBatchSize = errors.New("invalid batch size")
)

// Sequence is an immutable list of float32 values. The zero value is
// an empty sequence.
type Sequence struct {
	values []float32
}

// New returns a Sequence holding a copy of values.
func New(values []float32) *Sequence {
	return &Sequence{values: append([]float32(nil), values...)}
}

// Decode reads tightly packed 32-bit little endian floats until EOF.
func Decode(r io.Reader) (*Sequence, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(buf)%valueSize != 0 {
		return nil, fmt.Errorf("%w: expecting tightly packed array of 32 bit little endian float values, got size %d", ErrMalformedInput, len(buf))
	}
	values := make([]float32, len(buf)/valueSize)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*valueSize:]))
	}
	return &Sequence{values: values}, nil
}

func (s *Sequence) Len() int {
	return len(s.values)
}

func (s *Sequence) ByteSize() int {
	return len(s.values) * valueSize
}

// At returns the value at index i. It panics if i is out of range.
func (s *Sequence) At(i int) float32 {
	return s.values[i]
}

// Values returns a copy of the underlying values.
func (s *Sequence) Values() []float32 {
	return append([]float32(nil), s.values...)
}

// WriteTo writes the raw little endian encoding accepted by Decode.
func (s *Sequence) WriteTo(w io.Writer) (int64, error) {
	bufw := bufio.NewWriterSize(w, 1<<20)
	var word [valueSize]byte
	var n int64
	for _, v := range s.values {
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(v))
		nw, err := bufw.Write(word[:])
		n += int64(nw)
		if err != nil {
			return n, err
		}
	}
	return n, bufw.Flush()
}

// Preview returns the first max values, followed by "..." if there
// are more, and the element count.
func (s *Sequence) Preview(max int) string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range s.values {
		if i >= max {
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	if len(s.values) > max {
		b.WriteString("...")
	}
	fmt.Fprintf(&b, "], elements count: %d", len(s.values))
	return b.String()
}
