package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

func (p *Parser) parsePadTHT(tagOrigin token.Origin, end bool) (elements.Element, error) {
	pad := &elements.PadTHT{
		Clear:                   elements.PadTHTDefaults.Clear,
		Soldermask:              elements.PadTHTDefaults.Soldermask,
		Rotation:                elements.PadTHTDefaults.Rotation,
		Via:                     elements.PadTHTDefaults.Via,
		Thermal:                 elements.PadTHTDefaults.Thermal,
		ThermalTracks:           elements.PadTHTDefaults.ThermalTracks,
		ThermalTracksWidth:      elements.PadTHTDefaults.ThermalTracksWidth,
		ThermalTracksIndividual: elements.PadTHTDefaults.ThermalTracksIndividual,
	}
	var haveLayer, havePos, haveSize, haveDrill, haveForm bool
	last := tagOrigin
	cons := map[int32]int32{}

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
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid LAYER value")
			}
			pad.Layer, haveLayer = v, true
		case "POS":
			v, ok := decodeTuple(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid POS value")
			}
			pad.Position, havePos = v, true
		case "SIZE":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid SIZE value")
			}
			pad.Size, haveSize = v, true
		case "DRILL":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid DRILL value")
			}
			pad.Drill, haveDrill = v, true
		case "FORM":
			v, ok := decodePadForm(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid FORM value")
			}
			pad.Form, haveForm = v, true
		case "CLEAR":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid CLEAR value")
			}
			pad.Clear = v
		case "SOLDERMASK":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid SOLDERMASK value")
			}
			pad.Soldermask = v
		case "ROTATION":
			v, ok := decodeAngle(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid ROTATION value")
			}
			pad.Rotation = v
		case "VIA":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid VIA value")
			}
			pad.Via = v
		case "THERMAL":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid THERMAL value")
			}
			pad.Thermal = v
		case "THERMAL_TRACKS":
			v, ok := decodeInt(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid THERMAL_TRACKS value")
			}
			pad.ThermalTracks = v
		case "THERMAL_TRACKS_WIDTH":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid THERMAL_TRACKS_WIDTH value")
			}
			pad.ThermalTracksWidth = v
		case "THERMAL_TRACKS_INDIVIDUAL":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid THERMAL_TRACKS_INDIVIDUAL value")
			}
			pad.ThermalTracksIndividual = v
		case "PAD_ID":
			v, ok := decodeInt(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid PAD_ID value")
			}
			pad.Link.HasID, pad.Link.ID = true, v
		case "CON":
			v, ok := decodeInt(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "PAD: invalid CON%d value", stmt.Index)
			}
			cons[stmt.Index] = v
		default:
			p.warn(errkind.Syntax, stmt.Origin, "PAD: unknown field "+stmt.Name)
		}
		end = stmtEnd
	}

	if !haveLayer || !havePos || !haveSize || !haveDrill || !haveForm {
		return nil, p.fail(errkind.ArgIncomplete, last, "PAD: missing required field")
	}
	connections, ok := intsFromIndexed(cons)
	if !ok {
		return nil, p.fail(errkind.ArgRange, last, "PAD: connection indices are not contiguous from 0")
	}
	pad.Link.Connections = connections

	if !pad.Valid() {
		return nil, p.fail(errkind.ArgRange, last, "PAD: failed validation")
	}
	pad.SetParsed(true)
	return pad, nil
}

func (p *Parser) parsePadSMT(tagOrigin token.Origin, end bool) (elements.Element, error) {
	pad := &elements.PadSMT{
		Clear:              elements.PadSMTDefaults.Clear,
		Soldermask:         elements.PadSMTDefaults.Soldermask,
		Rotation:           elements.PadSMTDefaults.Rotation,
		Thermal:            elements.PadSMTDefaults.Thermal,
		ThermalTracks:      elements.PadSMTDefaults.ThermalTracks,
		ThermalTracksWidth: elements.PadSMTDefaults.ThermalTracksWidth,
	}
	var haveLayer, havePos, haveWidth, haveHeight bool
	last := tagOrigin
	cons := map[int32]int32{}

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
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid LAYER value")
			}
			pad.Layer, haveLayer = v, true
		case "POS":
			v, ok := decodeTuple(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid POS value")
			}
			pad.Position, havePos = v, true
		case "SIZE_X":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid SIZE_X value")
			}
			pad.Width, haveWidth = v, true
		case "SIZE_Y":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid SIZE_Y value")
			}
			pad.Height, haveHeight = v, true
		case "CLEAR":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid CLEAR value")
			}
			pad.Clear = v
		case "SOLDERMASK":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid SOLDERMASK value")
			}
			pad.Soldermask = v
		case "ROTATION":
			v, ok := decodeAngle(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid ROTATION value")
			}
			pad.Rotation = v
		case "THERMAL":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid THERMAL value")
			}
			pad.Thermal = v
		case "THERMAL_TRACKS":
			v, ok := decodeInt(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid THERMAL_TRACKS value")
			}
			pad.ThermalTracks = v
		case "THERMAL_TRACKS_WIDTH":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid THERMAL_TRACKS_WIDTH value")
			}
			pad.ThermalTracksWidth = v
		case "PAD_ID":
			v, ok := decodeInt(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid PAD_ID value")
			}
			pad.Link.HasID, pad.Link.ID = true, v
		case "CON":
			v, ok := decodeInt(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "SMDPAD: invalid CON%d value", stmt.Index)
			}
			cons[stmt.Index] = v
		default:
			p.warn(errkind.Syntax, stmt.Origin, "SMDPAD: unknown field "+stmt.Name)
		}
		end = stmtEnd
	}

	if !haveLayer || !havePos || !haveWidth || !haveHeight {
		return nil, p.fail(errkind.ArgIncomplete, last, "SMDPAD: missing required field")
	}
	connections, ok := intsFromIndexed(cons)
	if !ok {
		return nil, p.fail(errkind.ArgRange, last, "SMDPAD: connection indices are not contiguous from 0")
	}
	pad.Link.Connections = connections

	if !pad.Valid() {
		return nil, p.fail(errkind.ArgRange, last, "SMDPAD: failed validation")
	}
	pad.SetParsed(true)
	return pad, nil
}
