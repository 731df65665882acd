// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package seqscan

import "sync"

// throttle limits the number of goroutines doing work at once, and
// lets the caller wait for all of them to finish.
type throttle struct {
	Max       int
	wg        sync.WaitGroup
	ch        chan struct{}
	setupOnce sync.Once
}

func (t *throttle) Acquire() {
	t.setupOnce.Do(func() { t.ch = make(chan struct{}, t.Max) })
	t.wg.Add(1)
	t.ch <- struct{}{}
}

func (t *throttle) Release() {
	t.wg.Done()
	<-t.ch
}

func (t *throttle) Wait() {
	t.wg.Wait()
}
