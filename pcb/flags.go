package pcb

import (
	"io"
	"strconv"
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
)

// Flags is the board-wide bitfield selecting which copper planes are
// filled as a ground plane, plus the two-vs-four-layer board flag.
type Flags uint32

const (
	PlaneTop Flags = 1 << iota
	PlaneBottom
	PlaneInner1
	PlaneInner2
	Multilayer
)

// flagNames is ordered the way the original's SPRINT_PCB_FLAG_NAMES table
// is ordered, joined with "|" by Emit.
var flagNames = []struct {
	bit  Flags
	name string
}{
	{PlaneTop, "top fill"},
	{PlaneBottom, "bottom fill"},
	{PlaneInner1, "inner fill 1"},
	{PlaneInner2, "inner fill 2"},
	{Multilayer, "multilayer"},
}

// allFlags is the union of every bit this engine recognizes.
const allFlags = PlaneTop | PlaneBottom | PlaneInner1 | PlaneInner2 | Multilayer

// Valid reports whether f carries only recognized bits.
func (f Flags) Valid() bool {
	return f & ^allFlags == 0
}

// Has reports whether every bit in bit is set in f.
func (f Flags) Has(bit Flags) bool {
	return f&bit == bit
}

// Emit writes f's raw integer value, or its cooked "name|name|..." form
// ("none" if no bits are set). Unlike the original's sprint_pcb_flags_output,
// an unrecognized bit is rejected by Valid before Emit is ever reached
// rather than silently reported as the string "invalid" after the fact.
func (f Flags) Emit(w io.Writer, format primitives.Format) error {
	if format == primitives.FormatRaw {
		_, err := io.WriteString(w, strconv.FormatUint(uint64(f), 10))
		return err
	}
	var parts []string
	for _, fl := range flagNames {
		if f.Has(fl.bit) {
			parts = append(parts, fl.name)
		}
	}
	if len(parts) == 0 {
		_, err := io.WriteString(w, "none")
		return err
	}
	_, err := io.WriteString(w, strings.Join(parts, "|"))
	return err
}

func (f Flags) String() string {
	var sb strings.Builder
	_ = f.Emit(&sb, primitives.FormatCooked)
	return sb.String()
}
