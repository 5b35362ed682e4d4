package parser

import (
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

func (p *Parser) parseTrack(tagOrigin token.Origin, end bool) (elements.Element, error) {
	tr := &elements.Track{
		Clear:      elements.TrackDefaults.Clear,
		Cutout:     elements.TrackDefaults.Cutout,
		Soldermask: elements.TrackDefaults.Soldermask,
		FlatStart:  elements.TrackDefaults.FlatStart,
		FlatEnd:    elements.TrackDefaults.FlatEnd,
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
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid LAYER value")
			}
			tr.Layer, haveLayer = v, true
		case "WIDTH":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid WIDTH value")
			}
			tr.Width, haveWidth = v, true
		case "CLEAR":
			v, ok := decodeDist(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid CLEAR value")
			}
			tr.Clear = v
		case "CUTOUT":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid CUTOUT value")
			}
			tr.Cutout = v
		case "SOLDERMASK":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid SOLDERMASK value")
			}
			tr.Soldermask = v
		case "FLATSTART":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid FLATSTART value")
			}
			tr.FlatStart = v
		case "FLATEND":
			v, ok := decodeBool(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid FLATEND value")
			}
			tr.FlatEnd = v
		case "P":
			v, ok := decodeTuple(stmt)
			if !ok {
				return nil, p.fail(errkind.ArgFormat, stmt.Origin, "TRACK: invalid P%d value", stmt.Index)
			}
			points[stmt.Index] = v
		default:
			p.warn(errkind.Syntax, stmt.Origin, "TRACK: unknown field "+stmt.Name)
		}
		end = stmtEnd
	}

	if !haveLayer || !haveWidth {
		return nil, p.fail(errkind.ArgIncomplete, last, "TRACK: missing required field")
	}
	pts, ok := tuplesFromIndexed(points)
	if !ok {
		return nil, p.fail(errkind.ArgRange, last, "TRACK: point indices are not contiguous from 0")
	}
	tr.Points = pts

	if !tr.Valid() {
		return nil, p.fail(errkind.ArgRange, last, "TRACK: failed validation")
	}
	tr.SetParsed(true)
	return tr, nil
}
