package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

// parseComponent reads BEGIN_COMPONENT's own optional fields, then
// recurses into child elements until the matching END_COMPONENT tag. A
// missing ID_TEXT or VALUE_TEXT child is salvaged by synthesizing a blank
// one rather than discarding the whole component.
func (p *Parser) parseComponent(tagOrigin token.Origin, end bool, depth int) (elements.Element, error) {
	if depth >= elements.MaxDepth {
		return nil, errkind.At(errkind.Recursion, tagOrigin)
	}

	c := &elements.Component{
		Comment:      elements.ComponentDefaults.Comment,
		UsePickplace: elements.ComponentDefaults.UsePickplace,
		Package:      elements.ComponentDefaults.Package,
		Rotation:     elements.ComponentDefaults.Rotation,
	}
	last := tagOrigin

	for !end {
		stmt, stmtEnd, err := p.asm.Next(false)
		if err != nil {
			return nil, err
		}
		last = stmt.Origin
		switch normalizeField(stmt.Name) {
		case "COMMENT":
			v, ok := decodeString(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "COMPONENT: invalid COMMENT value")
			}
			c.Comment = &v
		case "USE_PICKPLACE":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "COMPONENT: invalid USE_PICKPLACE value")
			}
			c.UsePickplace = v
		case "PACKAGE":
			v, ok := decodeString(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "COMPONENT: invalid PACKAGE value")
			}
			c.Package = &v
		case "ROTATION":
			v, ok := decodeAngle(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "COMPONENT: invalid ROTATION value")
			}
			c.Rotation = v
		default:
			p.warn(errkind.Syntax, stmt.Origin, "COMPONENT: unknown field "+stmt.Name)
		}
		end = stmtEnd
	}

	rawChildren, err := p.parseChildren("END_COMPONENT", depth+1)
	if err != nil {
		return nil, err
	}
	for _, child := range rawChildren {
		text, ok := child.(*elements.Text)
		if !ok {
			c.Children = append(c.Children, child)
			continue
		}
		switch text.Subtype {
		case primitives.TextID:
			if c.TextID != nil {
				p.warn(errkind.Syntax, last, "COMPONENT: duplicate ID_TEXT, keeping the first")
				continue
			}
			c.TextID = text
		case primitives.TextValue:
			if c.TextValue != nil {
				p.warn(errkind.Syntax, last, "COMPONENT: duplicate VALUE_TEXT, keeping the first")
				continue
			}
			c.TextValue = text
		default:
			c.Children = append(c.Children, text)
		}
	}

	if c.TextID == nil {
		c.TextID, _ = elements.NewText(primitives.TextID, primitives.LayerSilkscreenTop, primitives.Tuple{}, 0, "")
		p.warn(errkind.ArgIncomplete, last, "COMPONENT: missing ID_TEXT, synthesized a blank one")
	}
	if c.TextValue == nil {
		c.TextValue, _ = elements.NewText(primitives.TextValue, primitives.LayerSilkscreenTop, primitives.Tuple{}, 0, "")
		p.warn(errkind.ArgIncomplete, last, "COMPONENT: missing VALUE_TEXT, synthesized a blank one")
	}

	if !c.Valid() {
		return nil, p.fail(errkind.ArgRange, last, "COMPONENT: failed validation")
	}
	c.SetParsed(true)
	return c, nil
}
