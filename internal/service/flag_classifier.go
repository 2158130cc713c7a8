package service

import (
	"github.com/pedroganco/sanum/internal/domain"
)

// criticalBand is the fraction of the reference interval (or of the single
// bound) beyond which an out-of-range value becomes critical.
const criticalBand = 0.5

// ClassifyFlag grades value against the reference bounds stated on the
// report. Both bounds are inclusive. With a single upper bound a value above
// 1.5x the bound is critical; with a single lower bound a value below half
// the bound is critical. Without bounds every value is normal.
//
// When refMin equals refMax the critical bands collapse onto the bound
// itself, so any deviation is critical.
func ClassifyFlag(value float64, refMin, refMax *float64) domain.Flag {
	switch {
	case refMin != nil && refMax != nil:
		lo, hi := *refMin, *refMax
		width := hi - lo
		switch {
		case value < lo-width*criticalBand:
			return domain.CRITICAL_LOW
		case value < lo:
			return domain.LOW
		case value > hi+width*criticalBand:
			return domain.CRITICAL_HIGH
		case value > hi:
			return domain.HIGH
		}
		return domain.NORMAL

	case refMax != nil:
		switch {
		case value > *refMax*(1+criticalBand):
			return domain.CRITICAL_HIGH
		case value > *refMax:
			return domain.HIGH
		}
		return domain.NORMAL

	case refMin != nil:
		switch {
		case value < *refMin*criticalBand:
			return domain.CRITICAL_LOW
		case value < *refMin:
			return domain.LOW
		}
		return domain.NORMAL
	}

	return domain.NORMAL
}
