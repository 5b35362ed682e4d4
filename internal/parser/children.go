package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/statement"
)

// parseChildren reads element after element, recursing at depth, until it
// hits closingTag standing alone with no index or value. A malformed child
// is discarded and the read resynchronizes to the next ';', same as at the
// top level; a closing tag that carries an index or value is itself treated
// as a local failure and resynchronized past.
func (p *Parser) parseChildren(closingTag string, depth int) ([]elements.Element, error) {
	var children []elements.Element
	sync := false
	for {
		tag, end, err := p.asm.Next(sync)
		if err != nil {
			return nil, err
		}

		if normalizeTag(tag.Name) == closingTag {
			if tag.Flags.Has(statement.FlagHasValue) || tag.Flags.Has(statement.FlagHasIndex) || !end {
				p.warn(errkind.Syntax, tag.Origin, closingTag+": closing tag must stand alone before ';'")
				sync = true
				continue
			}
			return children, nil
		}

		child, err := p.dispatchTag(tag, end, depth)
		if err != nil {
			if !recoverable(errkind.KindOf(err)) {
				return nil, err
			}
			sync = true
			continue
		}
		sync = false
		children = append(children, child)
	}
}
