// Package metrics publishes prometheus collectors for the mining engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hashesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashforge",
		Subsystem: "miner",
		Name:      "hashes_total",
		Help:      "Count of hash attempts performed.",
	}, []string{"miner"})
	blocksMinedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashforge",
		Subsystem: "miner",
		Name:      "blocks_mined_total",
		Help:      "Count of blocks mined.",
	}, []string{"miner"})
	attemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashforge",
		Subsystem: "miner",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of successful mining attempts.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"miner"})
	hashRate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hashforge",
		Subsystem: "miner",
		Name:      "hash_rate",
		Help:      "Most recently observed hash rate in hashes per second.",
	}, []string{"miner"})
	difficulty = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hashforge",
		Subsystem: "miner",
		Name:      "difficulty",
		Help:      "Current mining difficulty.",
	})
)

// ObserveProgress records an in-flight progress sample. hashesDelta is
// the number of hashes performed since the previous sample, which for a
// fixed cadence is the cadence itself.
func ObserveProgress(miner string, hashesDelta uint64, rate float64) {
	hashesTotal.WithLabelValues(miner).Add(float64(hashesDelta))
	hashRate.WithLabelValues(miner).Set(rate)
}

// ObserveBlockMined records a successfully mined block.
func ObserveBlockMined(miner string, elapsed time.Duration, rate float64) {
	blocksMinedTotal.WithLabelValues(miner).Inc()
	attemptDuration.WithLabelValues(miner).Observe(elapsed.Seconds())
	hashRate.WithLabelValues(miner).Set(rate)
}

// SetDifficulty publishes the current difficulty.
func SetDifficulty(d uint) {
	difficulty.Set(float64(d))
}
