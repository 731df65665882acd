// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"net/http"
	_ "net/http/pprof"
	"sync"
	"time"

	"github.com/arvados/longestinc/seqscan"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	analysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "longestinc",
		Name:      "analyses_total",
		Help:      "Number of completed analyses, by strategy.",
	}, []string{"strategy"})
	chunksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "longestinc",
		Name:      "chunks_total",
		Help:      "Number of chunks analyzed by the parallel strategy.",
	})
	analysisSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "longestinc",
		Name:      "analysis_seconds",
		Help:      "Time spent finding the longest increasing interval.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"strategy"})

	metricsOnce sync.Once
)

func init() {
	prometheus.MustRegister(analysesTotal, chunksTotal, analysisSeconds)
}

// serveDebug serves Go profile data and metrics at addr, in the
// background.
func serveDebug(addr string) {
	metricsOnce.Do(func() { http.Handle("/metrics", promhttp.Handler()) })
	go func() {
		log.Println(http.ListenAndServe(addr, nil))
	}()
}

func strategyName(a seqscan.Analyser) string {
	if _, ok := a.(*seqscan.Batched); ok {
		return "parallel"
	}
	return "cpu"
}

// timeAnalysis runs a on seq and records the elapsed time.
func timeAnalysis(a seqscan.Analyser, seq *seqscan.Sequence) (seqscan.Interval, time.Duration) {
	t0 := time.Now()
	result := a.LongestIncreasing(seq)
	elapsed := time.Since(t0)

	strategy := strategyName(a)
	analysesTotal.WithLabelValues(strategy).Inc()
	analysisSeconds.WithLabelValues(strategy).Observe(elapsed.Seconds())
	if b, ok := a.(*seqscan.Batched); ok {
		chunksTotal.Add(float64((seq.Len() + b.BatchSize() - 1) / b.BatchSize()))
	}
	log.Debugf("%s: %v in %v", strategy, result, elapsed)
	return result, elapsed
}
