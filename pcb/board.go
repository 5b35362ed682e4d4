package pcb

import (
	"io"
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/serial"
)

// BoardDefaults holds the documented optional-field defaults for Board:
// an all-zero grid (no snapping) and no plane/multilayer flags set.
var BoardDefaults = Board{
	Grid:  Grid{},
	Flags: 0,
}

// Board is a whole parsed PCB file: its outline size, its snap grid, its
// layer-plane flags, and every element on it.
type Board struct {
	Width    primitives.Dist
	Height   primitives.Dist
	Grid     Grid
	Flags    Flags
	Elements elements.Group
}

// NewBoard builds a Board from its required outline dimensions over an
// already-parsed element tree, installing the documented grid/flags
// defaults.
func NewBoard(width, height primitives.Dist, els elements.Group) (*Board, bool) {
	b := &Board{
		Width:    width,
		Height:   height,
		Grid:     BoardDefaults.Grid,
		Flags:    BoardDefaults.Flags,
		Elements: els,
	}
	return b, b.Valid()
}

// Valid checks the board's own scalar fields and recurses into its
// element tree.
func (b *Board) Valid() bool {
	return primitives.SizeValid(b.Width) && primitives.SizeValid(b.Height) &&
		b.Grid.Valid() && b.Flags.Valid() && b.Elements.Valid()
}

// Emit writes b's cooked diagnostic form. Unlike the original's
// sprint_pcb_output — whose "elements=" field never actually emits the
// group's contents, just the literal text "elements=" — this emits every
// element on the board through internal/serial, recursively, the way
// internal/serial's own Group case does for a nested Group.
func (b *Board) Emit(w io.Writer, format primitives.Format) error {
	if format == primitives.FormatRaw {
		return emitRaw(w, b)
	}
	if _, err := io.WriteString(w, "pcb{width="); err != nil {
		return err
	}
	if err := b.Width.Emit(w, format); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ", height="); err != nil {
		return err
	}
	if err := b.Height.Emit(w, format); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ", grid="); err != nil {
		return err
	}
	if err := b.Grid.Emit(w, format); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ", flags="); err != nil {
		return err
	}
	if err := b.Flags.Emit(w, format); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ", elements=["); err != nil {
		return err
	}
	for i, el := range b.Elements.Children {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := serial.EmitCooked(w, el, format); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]}")
	return err
}

// emitRaw writes every element on the board as a sequence of raw
// statements; the board's own size/grid/flags header has no on-wire
// element-statement form of its own (spec.md §5 treats it as file
// metadata the plugin host supplies separately), so raw mode emits only
// the element tree.
func emitRaw(w io.Writer, b *Board) error {
	for _, el := range b.Elements.Children {
		if err := serial.Emit(w, el, primitives.FormatRaw); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Emit(&sb, primitives.FormatCooked)
	return sb.String()
}
