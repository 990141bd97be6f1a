package service

import (
	"fmt"
	"math"
)

// DefaultAvgSpeedMph is the assumed average road speed for transit estimates.
const DefaultAvgSpeedMph = 50.0

// Contingency buffers by distance band. Longer hauls carry proportionally
// more schedule risk (multi-day driving, mandatory rest, weather), so the
// buffer grows in discrete steps. Band boundaries are inclusive on the upper
// bound: exactly 500 miles takes the 20% buffer.
const (
	bufferShortHaul  = 0.10 // < 100 mi
	bufferMediumHaul = 0.20 // 100–500 mi
	bufferLongHaul   = 0.30 // 500–1000 mi
	bufferCrossHaul  = 0.50 // > 1000 mi
)

// Transit is the estimated delivery duration plus its display form.
type Transit struct {
	Hours   float64
	Display string
}

// TransitEstimator converts route distance into an estimated delivery
// duration with a distance-tiered contingency buffer.
type TransitEstimator struct {
	avgSpeedMph float64
}

// NewTransitEstimator returns an estimator using the given average speed.
// A non-positive speed falls back to DefaultAvgSpeedMph.
func NewTransitEstimator(avgSpeedMph float64) *TransitEstimator {
	if avgSpeedMph <= 0 {
		avgSpeedMph = DefaultAvgSpeedMph
	}
	return &TransitEstimator{avgSpeedMph: avgSpeedMph}
}

// Estimate returns the buffered transit time for the distance. Durations over
// 24 hours display as days with one decimal, everything else as a rounded-up
// hour count.
func (t *TransitEstimator) Estimate(distanceMiles int) Transit {
	baseHours := float64(distanceMiles) / t.avgSpeedMph
	totalHours := baseHours * (1 + bufferPercent(distanceMiles))

	var display string
	if totalHours > 24 {
		display = fmt.Sprintf("%.1f Days", totalHours/24)
	} else {
		display = fmt.Sprintf("%d Hours", int(math.Ceil(totalHours)))
	}

	return Transit{Hours: totalHours, Display: display}
}

func bufferPercent(distanceMiles int) float64 {
	switch {
	case distanceMiles < 100:
		return bufferShortHaul
	case distanceMiles <= 500:
		return bufferMediumHaul
	case distanceMiles <= 1000:
		return bufferLongHaul
	default:
		return bufferCrossHaul
	}
}
