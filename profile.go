// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	log "github.com/sirupsen/logrus"
)

func writeProfilesPeriodically(outdir string) {
	for range time.NewTicker(time.Minute).C {
		writeProfile(outdir, "mem.prof", pprof.WriteHeapProfile)
		writeProfile(outdir, "cpu.prof", func(w io.Writer) error {
			if err := pprof.StartCPUProfile(w); err != nil {
				return err
			}
			time.Sleep(time.Second)
			pprof.StopCPUProfile()
			return nil
		})
	}
}

// writeProfile writes to outdir/name~ and renames it to outdir/name
// when done, so readers never see a partial profile.
func writeProfile(outdir, name string, write func(io.Writer) error) {
	tmp := outdir + "/" + name + "~"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		log.Print(err)
		return
	}
	defer f.Close()
	runtime.GC()
	if err := write(f); err != nil {
		log.Print(err)
		return
	}
	err = f.Close()
	if err != nil {
		log.Print(err)
		return
	}
	err = os.Rename(tmp, outdir+"/"+name)
	if err != nil {
		log.Print(err)
	}
}
