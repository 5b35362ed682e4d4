// Package pcb assembles a parsed element tree into a whole board: its
// physical size, its snap grid, its layer-plane flags, and the element
// tree itself, per spec.md §5.
package pcb

import (
	"io"
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
)

// Grid is the board's snap grid: an origin offset plus a cell width and
// height.
type Grid struct {
	Origin primitives.Tuple
	Width  primitives.Dist
	Height primitives.Dist
}

// GridOf constructs a Grid; it exists alongside the struct literal to
// mirror the constructor-per-value idiom internal/primitives already uses.
func GridOf(origin primitives.Tuple, width, height primitives.Dist) Grid {
	return Grid{Origin: origin, Width: width, Height: height}
}

// Valid reports whether the grid's origin and both cell dimensions are
// valid distances. A grid is not required to have positive cell
// dimensions — spec.md leaves an all-zero grid (no snapping) legal.
func (g Grid) Valid() bool {
	return g.Origin.Valid() && g.Width.Valid() && g.Height.Valid()
}

// Emit writes g's cooked diagnostic form; grid has no on-wire
// representation of its own (it travels inside a PCB file's header, not
// as an element statement), so there is no raw mode to honor here — every
// Format value renders the same cooked form.
func (g Grid) Emit(w io.Writer, format primitives.Format) error {
	if _, err := io.WriteString(w, "grid{origin="); err != nil {
		return err
	}
	if err := g.Origin.Emit(w, format); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ", width="); err != nil {
		return err
	}
	if err := g.Width.Emit(w, format); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ", height="); err != nil {
		return err
	}
	if err := g.Height.Emit(w, format); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}")
	return err
}

func (g Grid) String() string {
	var sb strings.Builder
	_ = g.Emit(&sb, primitives.FormatCooked)
	return sb.String()
}
