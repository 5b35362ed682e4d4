package primitives

import (
	"fmt"
	"io"
)

// Angle is a signed angle counted in 1/1000 degree.
//
// The original C library reused SPRINT_DIST_MIN as the angle's lower bound,
// producing an asymmetric range of [-5e8, 360000] where the upper bound is
// a sane "360 degrees" but the lower bound is a leftover from copy-pasting
// the distance constant. AngleMin/AngleMax describe the corrected symmetric
// range; Valid additionally accepts values down to the historical floor,
// and Suspicious reports whether a value lies outside the corrected range.
// The parser checks only Valid, so a Suspicious angle is accepted without
// a warning.
type Angle int32

const (
	AngleWhole  = 1
	AngleCoarse = 100
	AngleFine   = 1000
	AngleNative = AngleFine

	// AngleMax is 360 degrees in native units.
	AngleMax = 360 * AngleNative
	// AngleMin is the corrected, symmetric lower bound.
	AngleMin = -AngleMax
	// angleHistoricalFloor is the original buggy lower bound, reusing
	// DistMin. Values between angleHistoricalFloor and AngleMin are
	// accepted (for backward input compatibility) but are Suspicious.
	angleHistoricalFloor = DistMin
)

// Valid reports whether a is within the historical floor and AngleMax —
// the permissive range the parser accepts without rejecting the element.
func (a Angle) Valid() bool {
	return a >= angleHistoricalFloor && a <= AngleMax
}

// Suspicious reports whether a is outside the corrected, intended range
// [AngleMin, AngleMax] even though Valid accepts it. Nothing in this module
// calls it: the parser takes such angles without a warning.
func (a Angle) Suspicious() bool {
	return a.Valid() && (a < AngleMin || a > AngleMax)
}

// Emit writes a in the given format: raw integer, or degree-suffixed decimal.
func (a Angle) Emit(w io.Writer, format Format) error {
	if !format.valid() {
		return fmt.Errorf("invalid format %d", format)
	}
	if format == FormatRaw {
		_, err := fmt.Fprintf(w, "%d", int32(a))
		return err
	}
	return writeScaled(w, int64(a), unitScale{AngleNative, 3, "deg"})
}
