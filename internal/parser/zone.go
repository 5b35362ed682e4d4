package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

func (p *Parser) parseZone(tagOrigin token.Origin, end bool) (elements.Element, error) {
	z := &elements.Zone{
		Clear:      elements.ZoneDefaults.Clear,
		Cutout:     elements.ZoneDefaults.Cutout,
		Soldermask: elements.ZoneDefaults.Soldermask,
		Hatch:      elements.ZoneDefaults.Hatch,
		HatchAuto:  elements.ZoneDefaults.HatchAuto,
		HatchWidth: elements.ZoneDefaults.HatchWidth,
	}
	var haveLayer, haveWidth bool
	last := tagOrigin
	points := map[int32]primitives.Tuple{}

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
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid LAYER value")
			}
			z.Layer, haveLayer = v, true
		case "WIDTH":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid WIDTH value")
			}
			z.Width, haveWidth = v, true
		case "CLEAR":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid CLEAR value")
			}
			z.Clear = v
		case "CUTOUT":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid CUTOUT value")
			}
			z.Cutout = v
		case "SOLDERMASK":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid SOLDERMASK value")
			}
			z.Soldermask = v
		case "HATCH":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid HATCH value")
			}
			z.Hatch = v
		case "HATCH_AUTO":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid HATCH_AUTO value")
			}
			z.HatchAuto = v
		case "HATCH_WIDTH":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid HATCH_WIDTH value")
			}
			z.HatchWidth = v
		case "P":
			v, ok := decodeTuple(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "ZONE: invalid P%d value", stmt.Index)
			}
			points[stmt.Index] = v
		default:
			p.warn(errkind.Syntax, stmt.Origin, "ZONE: unknown field "+stmt.Name)
		}
		end = stmtEnd
	}

	if !haveLayer || !haveWidth {
		return nil, p.fail(errkind.ArgIncomplete, last, "ZONE: missing required field")
	}
	pts, ok := tuplesFromIndexed(points)
	if !ok {
		return nil, p.fail(errkind.ArgRange, last, "ZONE: point indices are not contiguous from 0")
	}
	z.Points = pts

	if !z.Valid() {
		return nil, p.fail(errkind.ArgRange, last, "ZONE: failed validation")
	}
	z.SetParsed(true)
	return z, nil
}
