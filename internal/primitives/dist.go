package primitives

import (
	"fmt"
	"io"
	"strings"
)

// Dist is a signed distance counted in 1/10,000 mm. Valid range is
// [-5e8, +5e8], covering +/-50m.
type Dist int32

const (
	DistPerUM = distPerUM
	DistPerMM = distPerMM
	DistPerCM = distPerCM
	DistPerTH = distPerTH
	DistPerIN = distPerIN

	DistMax = 5000 * DistPerCM
	DistMin = -DistMax
)

// Valid reports whether d is within [DistMin, DistMax].
func (d Dist) Valid() bool {
	return d >= DistMin && d <= DistMax
}

// SizeValid reports whether d is a valid non-negative Size (the "size"
// subrange of Dist: [0, DistMax]).
func SizeValid(d Dist) bool {
	return d >= 0 && d <= DistMax
}

// Emit writes d in the given format: raw integer, or a decimal-with-unit
// rendering for any of the cooked formats.
func (d Dist) Emit(w io.Writer, format Format) error {
	if !format.valid() {
		return fmt.Errorf("invalid format %d", format)
	}
	if format == FormatRaw {
		_, err := fmt.Fprintf(w, "%d", int32(d))
		return err
	}
	return writeScaled(w, int64(d), scales[format])
}

func (d Dist) String() string {
	var sb strings.Builder
	_ = d.Emit(&sb, FormatCooked)
	return sb.String()
}
