package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

// parseGroup reads child elements until the matching END_GROUP tag. GROUP
// carries no fields of its own, so end must already be true when this is
// called; a GROUP tag followed by fields arrives with end false and is
// rejected here (an index or value on the tag itself is rejected by the
// caller before dispatch).
func (p *Parser) parseGroup(tagOrigin token.Origin, end bool, depth int) (elements.Element, error) {
	if depth >= elements.MaxDepth {
		return nil, errkind.At(errkind.Recursion, tagOrigin)
	}
	if !end {
		return nil, p.fail(errkind.Syntax, tagOrigin, "GROUP: unexpected field before ';'")
	}

	children, err := p.parseChildren("END_GROUP", depth+1)
	if err != nil {
		return nil, err
	}

	g := &elements.Group{Children: children}
	if !g.Valid() {
		return nil, p.fail(errkind.ArgRange, tagOrigin, "GROUP: failed validation")
	}
	g.SetParsed(true)
	return g, nil
}
