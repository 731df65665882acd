// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"

	"gopkg.in/check.v1"
)

type commandsSuite struct{}

var _ = check.Suite(&commandsSuite{})

func (s *commandsSuite) TestRandomFormats(c *check.C) {
	tmpdir := c.MkDir()
	for _, fnm := range []string{"r.f32", "r.f32.gz", "r.npy", "r.npy.gz"} {
		c.Logf("=== %s", fnm)
		exited := (&randomcmd{}).RunCommand("random", []string{"-n=1000", "-max=3", "-seed=42", "-o", tmpdir + "/" + fnm}, nil, os.Stdout, os.Stderr)
		c.Assert(exited, check.Equals, 0)
		seq, err := readSequence(tmpdir+"/"+fnm, "auto")
		c.Assert(err, check.IsNil)
		c.Check(seq.Len(), check.Equals, 1000)
		for i := 0; i < seq.Len(); i++ {
			v := seq.At(i)
			if v < 0 || v > 3 || v != float32(int(v)) {
				c.Errorf("value %d out of range: %v", i, v)
				break
			}
		}
	}
	raw, err := ioutil.ReadFile(tmpdir + "/r.f32")
	c.Assert(err, check.IsNil)
	c.Check(raw, check.HasLen, 4000)

	// same seed, same values, regardless of format
	a, err := readSequence(tmpdir+"/r.f32", "auto")
	c.Assert(err, check.IsNil)
	b, err := readSequence(tmpdir+"/r.npy.gz", "auto")
	c.Assert(err, check.IsNil)
	c.Check(a.Values(), check.DeepEquals, b.Values())
}

func (s *commandsSuite) TestRandomStdout(c *check.C) {
	var stdout bytes.Buffer
	exited := (&randomcmd{}).RunCommand("random", []string{"-n=10", "-seed=1"}, nil, &stdout, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(stdout.Len(), check.Equals, 40)

	var stderr bytes.Buffer
	exited = (&randomcmd{}).RunCommand("random", []string{"-n=-1"}, nil, &stdout, &stderr)
	c.Check(exited, check.Equals, 2)
	c.Check(stderr.String(), check.Matches, `-n and -max must not be negative\n`)
}

func (s *commandsSuite) TestCompare(c *check.C) {
	tmpdir := c.MkDir()
	writeRaw(c, tmpdir+"/values.f32", []float32{0, 0, 0, 0, 0, 1, 2, 3})
	for _, args := range [][]string{
		{"-random=20000", "-max=5", "-seed=7", "-batch-size=13"},
		{"-random=20000", "-seed=7", "-batch-size=1"},
		{"-batch-size=3", tmpdir + "/values.f32"},
	} {
		c.Logf("=== %v", args)
		var stdout bytes.Buffer
		exited := (&comparecmd{}).RunCommand("compare", args, nil, &stdout, os.Stderr)
		c.Check(exited, check.Equals, 0)
		c.Check(stdout.String(), check.Matches, `(?ms)FloatSequence: .*Using cpu:\n.*Using parallel:\n.*`)
	}

	var stdout, stderr bytes.Buffer
	exited := (&comparecmd{}).RunCommand("compare", []string{"-random=10", tmpdir + "/values.f32"}, nil, &stdout, &stderr)
	c.Check(exited, check.Equals, 2)
	c.Check(stderr.String(), check.Matches, `usage: .*\n`)
}

func (s *commandsSuite) TestChunks(c *check.C) {
	tmpdir := c.MkDir()
	writeRaw(c, tmpdir+"/values.f32", []float32{1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 11, 11})
	var stdout bytes.Buffer
	exited := (&chunkscmd{}).RunCommand("chunks", []string{"-batch-size=5", tmpdir + "/values.f32"}, nil, &stdout, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(strings.Split(stdout.String(), "\n"), check.DeepEquals, []string{
		"chunk\tstart\tend\tleading\ttrailing\tinternal_start\tinternal_end",
		"0\t0\t5\t1\t3\t0\t0",
		"1\t5\t10\t5\t5\t5\t5",
		"2\t10\t15\t3\t1\t10\t13",
		"",
	})
}

func (s *commandsSuite) TestDescribe(c *check.C) {
	tmpdir := c.MkDir()
	writeRaw(c, tmpdir+"/values.f32", []float32{1, 2, 3, 6})
	var stdout bytes.Buffer
	exited := (&describecmd{}).RunCommand("describe", []string{tmpdir + "/values.f32"}, nil, &stdout, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(stdout.String(), check.Matches, `FloatSequence: \[1, 2, 3, 6\], elements count: 4
byte size: 16 \(16 B\)
blake2b-256: [0-9a-f]{64}
min: 1
max: 6
mean: 3
`)

	err := ioutil.WriteFile(tmpdir+"/empty.f32", nil, 0644)
	c.Assert(err, check.IsNil)
	stdout.Reset()
	exited = (&describecmd{}).RunCommand("describe", []string{tmpdir + "/empty.f32"}, nil, &stdout, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(stdout.String(), check.Matches, `(?ms)FloatSequence: \[\], elements count: 0\n.*`)
	c.Check(strings.Contains(stdout.String(), "mean"), check.Equals, false)
}

func (s *commandsSuite) TestFileFormat(c *check.C) {
	for _, trial := range []struct {
		fnm    string
		format string
		out    string
	}{
		{"a.f32", "auto", "raw"},
		{"a.npy", "auto", "npy"},
		{"a.npy.gz", "", "npy"},
		{"a.f32.gz", "auto", "raw"},
		{"a.npy", "raw", "raw"},
		{"a.f32", "npy", "npy"},
	} {
		out, err := fileFormat(trial.fnm, trial.format)
		c.Check(err, check.IsNil)
		c.Check(out, check.Equals, trial.out, check.Commentf("%v", trial))
	}
	_, err := fileFormat("a.f32", "csv")
	c.Check(err, check.NotNil)
}
