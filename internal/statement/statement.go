// Package statement groups a tokenizer's token stream into statements: a
// named head, an optional directly-appended integer index, an optional
// "= value" pair, terminated by ',' (more fields follow in the same
// element) or ';' (the element ends here).
package statement

import "github.com/laminoid-pcb/sprintplugin/internal/token"

// Flags records which optional parts of a statement were present.
type Flags int

const (
	// FlagFirst marks the first statement after a terminator (or the very
	// start of the document) — i.e. the statement carrying the element tag.
	FlagFirst Flags = 1 << iota
	// FlagHasValue marks a statement with an "= value" part.
	FlagHasValue
	// FlagHasIndex marks a statement whose name was followed directly by an
	// integer index (e.g. "P0", "CON3").
	FlagHasIndex
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// ValueKind distinguishes the shape of a statement's value.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueWord
	ValueNumber
	ValueString
	ValueTuple
)

// Statement is one "NAME[INDEX][=VALUE]" unit inside an element.
type Statement struct {
	Name   string
	Flags  Flags
	Index  int32
	Origin token.Origin

	ValueKind ValueKind
	// Word holds the raw identifier for ValueWord (callers decode booleans,
	// layer/form/enum keywords, etc. from it as the field demands).
	Word string
	// Number holds the decoded value for ValueNumber, and the X component
	// for ValueTuple.
	Number int32
	// TupleY holds the Y component for ValueTuple.
	TupleY int32
	// Str holds the unescaped contents for ValueString.
	Str string
}
