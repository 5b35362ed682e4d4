// Package serial implements the dual raw/cooked serializer for the
// in-memory element tree built by internal/parser: Emit renders a single
// elements.Element back to its wire form (raw, byte-for-byte reparsable by
// internal/parser) or to a human-readable cooked form, in either case
// honoring each case's documented optional-field defaults by omitting a
// field that still holds its default value.
package serial

import (
	"fmt"
	"io"
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
)

// Emit writes el to w in the given format. primitives.FormatRaw produces
// the on-wire form (`parse(Emit(w, el, FormatRaw)) == el`, per the
// round-trip property); every other Format produces the cooked
// `name{field=value, ...}` form, using format to select the distance unit
// for any Dist-valued field.
func Emit(w io.Writer, el elements.Element, format primitives.Format) error {
	return emit(w, el, format, 0)
}

// EmitCooked is Emit restricted to a cooked distance unit; it exists so
// callers rendering human-readable output don't have to remember that
// FormatRaw is the one Format Emit also accepts but EmitCooked must not.
func EmitCooked(w io.Writer, el elements.Element, unit primitives.Format) error {
	if unit == primitives.FormatRaw {
		return fmt.Errorf("serial: EmitCooked requires a cooked distance unit, got FormatRaw")
	}
	return emit(w, el, unit, 0)
}

func emit(w io.Writer, el elements.Element, format primitives.Format, depth int) error {
	if depth >= elements.MaxDepth {
		return errkind.New(errkind.Recursion)
	}
	e := newEmitter(w, format, depth)
	switch v := el.(type) {
	case *elements.Track:
		return e.track(v)
	case *elements.PadTHT:
		return e.padTHT(v)
	case *elements.PadSMT:
		return e.padSMT(v)
	case *elements.Zone:
		return e.zone(v)
	case *elements.Text:
		return e.text(v)
	case *elements.Circle:
		return e.circle(v)
	case *elements.Component:
		return e.component(v)
	case *elements.Group:
		return e.group(v)
	default:
		return fmt.Errorf("serial: unhandled element type %T", el)
	}
}

// raw is true for primitives.FormatRaw, false for every cooked variant;
// the distance sub-format (mm/um/cm/th/in) carried by format only matters
// in the cooked case, and is passed straight through to each field's own
// primitives.Emit call.
type emitter struct {
	w      io.Writer
	format primitives.Format
	raw    bool
	depth  int
	first  bool
	err    error
}

func newEmitter(w io.Writer, format primitives.Format, depth int) *emitter {
	return &emitter{w: w, format: format, raw: format == primitives.FormatRaw, depth: depth, first: true}
}

// write is the single point every helper below routes through, so the
// first failure short-circuits the rest of the element's fields instead of
// writing a half-valid statement past it.
func (e *emitter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *emitter) writeValue(fn func(io.Writer, primitives.Format) error) {
	if e.err != nil {
		return
	}
	e.err = fn(e.w, e.format)
}

// tag opens the element: the bare raw tag keyword, or the cooked case name
// followed by '{'. Every subsequent field call supplies its own leading
// separator, so tag never does.
func (e *emitter) tag(rawName, cookedName string) {
	if e.raw {
		e.write(rawName)
	} else {
		e.write(cookedName + "{")
	}
}

// sep writes the separator a field needs before its name: "," before every
// raw field (the first one follows the tag keyword); in cooked mode nothing
// before the first field (it follows the '{') and ", " after that.
func (e *emitter) sep() {
	if e.first {
		e.first = false
		if !e.raw {
			return
		}
	}
	if e.raw {
		e.write(",")
	} else {
		e.write(", ")
	}
}

func (e *emitter) name(rawName, cookedName string) {
	if e.raw {
		e.write(rawName)
	} else {
		e.write(cookedName)
	}
}

// field emits one NAME=value pair using fn to render the value through a
// primitives Emit method.
func (e *emitter) field(rawName, cookedName string, fn func(io.Writer, primitives.Format) error) {
	e.sep()
	e.name(rawName, cookedName)
	e.write("=")
	e.writeValue(fn)
}

// indexedField emits one NAMEn=value pair for an indexed field (Pn, CONn).
func (e *emitter) indexedField(rawName, cookedName string, index int, fn func(io.Writer, primitives.Format) error) {
	e.sep()
	e.name(rawName, cookedName)
	e.write(fmt.Sprint(index))
	e.write("=")
	e.writeValue(fn)
}

func (e *emitter) boolField(rawName, cookedName string, v bool) {
	e.sep()
	e.name(rawName, cookedName)
	e.write("=")
	if v {
		e.write("true")
	} else {
		e.write("false")
	}
}

func (e *emitter) intField(rawName, cookedName string, v int32) {
	e.sep()
	e.name(rawName, cookedName)
	e.write(fmt.Sprintf("=%d", v))
}

// stringField quotes v with the format's active string delimiter. Emit
// must fail, rather than produce unparsable output, if v itself contains
// that delimiter — the format has no escaping mechanism.
func (e *emitter) stringField(rawName, cookedName, v string) {
	if e.err != nil {
		return
	}
	delim := byte('|')
	if !e.raw {
		delim = '"'
	}
	if strings.IndexByte(v, delim) >= 0 {
		e.err = fmt.Errorf("serial: value %q contains the active delimiter %q", v, delim)
		return
	}
	e.sep()
	e.name(rawName, cookedName)
	e.write("=")
	e.write(string(delim) + v + string(delim))
}

// end closes the element: ';' in raw mode, '}' in cooked mode. Component
// and Group close themselves (with indentation, in raw mode) rather than
// calling this, since their closing tag is a whole separate statement.
func (e *emitter) end() error {
	if e.err != nil {
		return e.err
	}
	if e.raw {
		e.write(";")
	} else {
		e.write("}")
	}
	return e.err
}
