package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

func (p *Parser) parseCircle(tagOrigin token.Origin, end bool) (elements.Element, error) {
	c := &elements.Circle{
		Clear:      elements.CircleDefaults.Clear,
		Cutout:     elements.CircleDefaults.Cutout,
		Soldermask: elements.CircleDefaults.Soldermask,
		Start:      elements.CircleDefaults.Start,
		Stop:       elements.CircleDefaults.Stop,
		Fill:       elements.CircleDefaults.Fill,
	}
	var haveLayer, haveWidth, haveCenter, haveRadius bool
	last := tagOrigin

	for !end {
		stmt, stmtEnd, err := p.asm.Next(false)
		if err != nil {
			return nil, err
		}
		last = stmt.Origin
		switch normalizeField(stmt.Name) {
		case "LAYER":
			v, ok := decodeLayer(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid LAYER value")
			}
			c.Layer, haveLayer = v, true
		case "WIDTH":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid WIDTH value")
			}
			c.Width, haveWidth = v, true
		case "CENTER":
			v, ok := decodeTuple(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid CENTER value")
			}
			c.Center, haveCenter = v, true
		case "RADIUS":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid RADIUS value")
			}
			c.Radius, haveRadius = v, true
		case "CLEAR":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid CLEAR value")
			}
			c.Clear = v
		case "CUTOUT":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid CUTOUT value")
			}
			c.Cutout = v
		case "SOLDERMASK":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid SOLDERMASK value")
			}
			c.Soldermask = v
		case "START":
			v, ok := decodeAngle(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid START value")
			}
			c.Start = v
		case "STOP":
			v, ok := decodeAngle(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid STOP value")
			}
			c.Stop = v
		case "FILL":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "CIRCLE: invalid FILL value")
			}
			c.Fill = v
		default:
			p.warn(errkind.Syntax, stmt.Origin, "CIRCLE: unknown field "+stmt.Name)
		}
		end = stmtEnd
	}

	if !haveLayer || !haveWidth || !haveCenter || !haveRadius {
		return nil, p.fail(errkind.ArgIncomplete, last, "CIRCLE: missing required field")
	}
	if !c.Valid() {
		return nil, p.fail(errkind.ArgRange, last, "CIRCLE: failed validation")
	}
	c.SetParsed(true)
	return c, nil
}
