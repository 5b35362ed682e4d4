package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

func (p *Parser) parseText(subtype primitives.TextSubtype, tagOrigin token.Origin, end bool) (elements.Element, error) {
	t := &elements.Text{
		Subtype:          subtype,
		Clear:            elements.TextDefaults.Clear,
		Cutout:           elements.TextDefaults.Cutout,
		Soldermask:       elements.TextDefaults.Soldermask,
		Style:            elements.TextDefaults.Style,
		Thickness:        elements.TextDefaults.Thickness,
		Rotation:         elements.TextDefaults.Rotation,
		MirrorHorizontal: elements.TextDefaults.MirrorHorizontal,
		MirrorVertical:   elements.TextDefaults.MirrorVertical,
		Visible:          elements.TextDefaults.Visible,
	}
	var haveLayer, havePos, haveHeight, haveText bool
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
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid LAYER value")
			}
			t.Layer, haveLayer = v, true
		case "POS":
			v, ok := decodeTuple(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid POS value")
			}
			t.Position, havePos = v, true
		case "HEIGHT":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid HEIGHT value")
			}
			t.Height, haveHeight = v, true
		case "TEXT":
			v, ok := decodeString(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid TEXT value")
			}
			t.Text, haveText = v, true
		case "CLEAR":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid CLEAR value")
			}
			t.Clear = v
		case "CUTOUT":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid CUTOUT value")
			}
			t.Cutout = v
		case "SOLDERMASK":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid SOLDERMASK value")
			}
			t.Soldermask = v
		case "STYLE":
			v, ok := decodeTextStyle(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid STYLE value")
			}
			t.Style = v
		case "THICKNESS":
			v, ok := decodeTextThickness(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid THICKNESS value")
			}
			t.Thickness = v
		case "ROTATION":
			v, ok := decodeAngle(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid ROTATION value")
			}
			t.Rotation = v
		case "MIRROR_HORIZONTAL":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid MIRROR_HORIZONTAL value")
			}
			t.MirrorHorizontal = v
		case "MIRROR_VERTICAL":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid MIRROR_VERTICAL value")
			}
			t.MirrorVertical = v
		case "VISIBLE":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TEXT: invalid VISIBLE value")
			}
			t.Visible = v
		default:
			p.warn(errkind.Syntax, stmt.Origin, "TEXT: unknown field "+stmt.Name)
		}
		end = stmtEnd
	}

	if !haveLayer || !havePos || !haveHeight || !haveText {
		return nil, p.fail(errkind.ArgIncomplete, last, "TEXT: missing required field")
	}
	if !t.Valid() {
		return nil, p.fail(errkind.ArgRange, last, "TEXT: failed validation")
	}
	t.SetParsed(true)
	return t, nil
}
