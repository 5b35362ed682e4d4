// Package parser implements the recursive-descent element parser: it
// consumes statements from internal/statement and builds an
// internal/elements tree, recovering from local failures by discarding the
// offending element and resynchronizing to the next statement terminator.
package parser

import (
	"fmt"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/statement"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

// Diagnostic is one warning the parser emitted while salvaging input.
type Diagnostic struct {
	Kind    errkind.Kind
	Origin  token.Origin
	Message string
}

// Parser drives an Assembler to build elements.Element values one at a
// time, or a whole document's worth wrapped in a Group.
type Parser struct {
	asm *statement.Assembler

	warnings []Diagnostic
	salvaged bool
	sync     bool
}

// New wraps a tokenizer-backed source for parsing.
func New(src token.Source, name string) *Parser {
	return &Parser{asm: statement.NewAssembler(token.NewTokenizer(src, name))}
}

// Warnings returns every diagnostic collected so far.
func (p *Parser) Warnings() []Diagnostic { return p.warnings }

// Salvaged reports whether any warning has been recorded so far: an element
// discarded, an unknown field skipped, or a missing Component text slot
// filled in.
func (p *Parser) Salvaged() bool { return p.salvaged }

func (p *Parser) warn(kind errkind.Kind, origin token.Origin, message string) {
	p.warnings = append(p.warnings, Diagnostic{Kind: kind, Origin: origin, Message: message})
	p.salvaged = true
}

// NextElement reads the next top-level element, resynchronizing past any
// element that failed to parse. It returns (nil, salvaged, nil) once the
// input is exhausted with nothing left to read. Only a catastrophic error —
// recursion overflow or memory exhaustion — is returned; ordinary malformed
// elements are skipped and recorded as warnings instead. A read failure in
// the Source is not reported: the Source ends the input there, and the
// parse finishes as at a clean EOF.
func (p *Parser) NextElement() (elements.Element, bool, error) {
	for {
		el, err := p.parseElementAt(p.sync, 0)
		if err != nil {
			if errkind.KindOf(err) == errkind.EOF {
				p.sync = false
				return nil, p.salvaged, nil
			}
			if !recoverable(errkind.KindOf(err)) {
				return nil, p.salvaged, err
			}
			p.sync = true
			continue
		}
		p.sync = false
		return el, p.salvaged, nil
	}
}

// Document consumes the entire input, wrapping every top-level element it
// could build in a synthetic Group (the file itself has no tag of its
// own). The returned bool reports whether anything had to be salvaged
// along the way.
func (p *Parser) Document() (*elements.Group, bool, error) {
	var els []elements.Element
	for {
		el, salvaged, err := p.NextElement()
		if err != nil {
			return nil, salvaged, err
		}
		if el == nil {
			doc := &elements.Group{Children: els}
			doc.SetParsed(true)
			return doc, salvaged, nil
		}
		els = append(els, el)
	}
}

// recoverable reports whether a failure below the element boundary should
// be salvaged (discard the element, resync to ';') rather than aborting
// the whole parse.
func recoverable(kind errkind.Kind) bool {
	switch kind {
	case errkind.EOF, errkind.Memory, errkind.Recursion:
		return false
	default:
		return true
	}
}

func (p *Parser) parseElementAt(sync bool, depth int) (elements.Element, error) {
	if depth >= elements.MaxDepth {
		return nil, errkind.New(errkind.Recursion)
	}

	tag, end, err := p.asm.Next(sync)
	if err != nil {
		return nil, err
	}
	return p.dispatchTag(tag, end, depth)
}

// dispatchTag resolves an already-read tag statement to its element case and
// parses it. Shared by the top-level loop and by parseComponent/parseGroup
// reading their children, so a closing tag's recognition (which must happen
// before dispatch, since the caller needs to match it against its own
// expected closer) stays outside this function.
func (p *Parser) dispatchTag(tag statement.Statement, end bool, depth int) (elements.Element, error) {
	if tag.Flags.Has(statement.FlagHasValue) || tag.Flags.Has(statement.FlagHasIndex) {
		return nil, p.fail(errkind.Syntax, tag.Origin, "element tag %q cannot carry an index or value", tag.Name)
	}

	entry, ok := tagTable[normalizeTag(tag.Name)]
	if !ok {
		return nil, p.fail(errkind.Syntax, tag.Origin, "unknown element tag %q%s", tag.Name, suggestTag(tag.Name))
	}
	if entry.closing {
		return nil, p.fail(errkind.Syntax, tag.Origin, "unexpected closing tag %q", tag.Name)
	}

	switch entry.kind {
	case elements.TypeTrack:
		return p.parseTrack(tag.Origin, end)
	case elements.TypePadTHT:
		return p.parsePadTHT(tag.Origin, end)
	case elements.TypePadSMT:
		return p.parsePadSMT(tag.Origin, end)
	case elements.TypeZone:
		return p.parseZone(tag.Origin, end)
	case elements.TypeText:
		return p.parseText(entry.subtype, tag.Origin, end)
	case elements.TypeCircle:
		return p.parseCircle(tag.Origin, end)
	case elements.TypeComponent:
		return p.parseComponent(tag.Origin, end, depth)
	case elements.TypeGroup:
		return p.parseGroup(tag.Origin, end, depth)
	default:
		return nil, p.fail(errkind.Internal, tag.Origin, "tag %q resolved to unhandled case", tag.Name)
	}
}

// fail wraps errkind.At with a formatted context message and records it as
// a warning (every call site is on the recoverable path: unknown tag, bad
// value, failed validation; an unknown field goes through warn instead).
func (p *Parser) fail(kind errkind.Kind, origin token.Origin, format string, args ...any) error {
	p.warn(kind, origin, fmt.Sprintf(format, args...))
	return errkind.At(kind, origin)
}
