// Package tilt maps a site latitude to a recommended panel inclination.
//
// The fixed-mode model is piecewise linear on the latitude magnitude L:
//
//	L < 25        0.87·L
//	25 <= L <= 50 0.76·L + 3.1
//	L > 50        L
//
// The coefficients approximate annual-energy-maximizing fixed tilt tables,
// with a reduced tilt in the tropics. The high band is an interim estimate.
package tilt

import (
	"math"

	"github.com/1F47E/sol/pkg/models"
)

const (
	lowBandUpper  = 25 // first degree of the mid band
	midBandUpper  = 50 // last degree of the mid band
	lowBandFactor = 0.87
	midBandFactor = 0.76
	midBandOffset = 3.1

	maxTilt = 90.0
)

// DefaultSeasonalOffset is how far summer and winter tilt move away from L
const DefaultSeasonalOffset = 15.0

// Band identifies which piece of the fixed-mode model applies
type Band uint8

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	default:
		return "high"
	}
}

// BandFor returns the model band for a latitude magnitude.
// Both 25 and 50 belong to the mid band.
func BandFor(degrees uint8) Band {
	switch {
	case degrees < lowBandUpper:
		return BandLow
	case degrees <= midBandUpper:
		return BandMid
	default:
		return BandHigh
	}
}

// Fixed returns the year-round tilt and orientation for lat
func Fixed(lat models.Latitude) models.TiltAdvisory {
	return models.TiltAdvisory{
		Tilt:        fixedTilt(lat.Degrees),
		Orientation: models.OrientationFor(lat.Hemisphere),
	}
}

func fixedTilt(degrees uint8) float64 {
	l := float64(degrees)
	switch BandFor(degrees) {
	case BandLow:
		return lowBandFactor * l
	case BandMid:
		return midBandFactor*l + midBandOffset
	default:
		// TODO: replace the identity with a fitted high-latitude curve once
		// reference tables above 50° are available.
		return l
	}
}

// Seasonal returns summer and winter tilts for a panel that is re-angled
// twice a year: L - offset and L + offset, clamped to [0, 90].
// A NaN offset yields 0 for both.
func Seasonal(lat models.Latitude, offset float64) models.SeasonalAdvisory {
	l := float64(lat.Degrees)
	return models.SeasonalAdvisory{
		Summer:      clamp(l - offset),
		Winter:      clamp(l + offset),
		Orientation: models.OrientationFor(lat.Hemisphere),
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > maxTilt {
		return maxTilt
	}
	return v
}
