// Package primitives implements the scalar value kinds shared by every PCB
// element: the layer enumeration, signed distances and angles, 2-tuples of
// distances, and the small per-element-field enumerations (pad form, text
// subtype/style/thickness). Each kind exposes a Valid predicate and an Emit
// method parameterized by Format, mirroring the raw/cooked duality the
// parser and serializer share.
package primitives

import (
	"fmt"
	"io"
)

// Format selects how a value is rendered by Emit.
type Format int

const (
	// FormatRaw is the on-wire representation: integers, no units.
	FormatRaw Format = iota
	// FormatCooked is the default human-readable rendering (distances in mm).
	FormatCooked
	FormatMM
	FormatUM
	FormatCM
	FormatTH
	FormatIN
)

func (f Format) valid() bool {
	return f >= FormatRaw && f <= FormatIN
}

// unitScale holds the distance-to-unit divisor and the number of fractional
// digits to pad to, taken from the original format's per-unit precision
// table (um=1, mm=4, cm=6, th=3, in=5).
type unitScale struct {
	perUnit   int64
	precision int
	suffix    string
}

const (
	distPerUM = 10
	distPerMM = distPerUM * 1000
	distPerCM = distPerMM * 10
	distPerTH = 254
	distPerIN = distPerTH * 1000
)

var scales = map[Format]unitScale{
	FormatCooked: {distPerMM, 4, "mm"},
	FormatMM:     {distPerMM, 4, "mm"},
	FormatUM:     {distPerUM, 1, "um"},
	FormatCM:     {distPerCM, 6, "cm"},
	FormatTH:     {distPerTH, 3, "th"},
	FormatIN:     {distPerIN, 5, "in"},
}

// writeScaled writes val/scale as "<int>.<frac><suffix>" using the same
// truncating division and zero-padded remainder the original C
// implementation used (integer division truncates toward zero; the
// remainder's absolute value is padded to `precision` digits).
func writeScaled(w io.Writer, val int64, s unitScale) error {
	whole := val / s.perUnit
	frac := val % s.perUnit
	if frac < 0 {
		frac = -frac
	}
	_, err := fmt.Fprintf(w, "%d.%0*d%s", whole, s.precision, frac, s.suffix)
	return err
}
