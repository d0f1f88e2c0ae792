// Package difficulty retargets the mining difficulty after each block so
// that mining time converges toward a fixed block interval.
package difficulty

import "time"

const (
	// TargetBlockTime is the block production cadence retargeting aims for.
	TargetBlockTime = 30 * time.Second

	// Min and Max bound the difficulty an adjustment can produce.
	Min uint = 1
	Max uint = 8
)

// Hysteresis band around the target. A single fast or slow block inside
// the band leaves the difficulty alone, which avoids oscillating on
// single sample noise. Deliberately simple: one integer step per block,
// no moving average.
const (
	raiseBelow = 0.8
	lowerAbove = 1.5
)

// Adjust observes the wall clock time the last block took to mine and
// returns the difficulty for the next attempt. It is applied once per
// completed block, never mid search.
func Adjust(current uint, observed time.Duration) uint {
	current = Clamp(current)

	target := TargetBlockTime.Seconds()
	secs := observed.Seconds()

	switch {
	case secs < raiseBelow*target:
		if current < Max {
			current++
		}
	case secs > lowerAbove*target:
		if current > Min {
			current--
		}
	}

	return current
}

// Clamp forces a difficulty into the [Min, Max] range. The controller is
// the only mutator, so an out of range value means it was injected out of
// band; it is corrected rather than trusted.
func Clamp(d uint) uint {
	if d < Min {
		return Min
	}
	if d > Max {
		return Max
	}
	return d
}
