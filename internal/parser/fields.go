package parser

import (
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/statement"
)

func normalizeField(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func decodeLayer(stmt statement.Statement) (primitives.Layer, bool) {
	switch stmt.ValueKind {
	case statement.ValueNumber:
		l := primitives.Layer(stmt.Number)
		return l, l.Valid()
	case statement.ValueWord:
		return primitives.LayerFromWord(stmt.Word)
	default:
		return 0, false
	}
}

func decodeDist(stmt statement.Statement) (primitives.Dist, bool) {
	if stmt.ValueKind != statement.ValueNumber {
		return 0, false
	}
	d := primitives.Dist(stmt.Number)
	return d, d.Valid()
}

func decodeAngle(stmt statement.Statement) (primitives.Angle, bool) {
	if stmt.ValueKind != statement.ValueNumber {
		return 0, false
	}
	a := primitives.Angle(stmt.Number)
	return a, a.Valid()
}

func decodeBool(stmt statement.Statement) (bool, bool) {
	if stmt.ValueKind != statement.ValueWord {
		return false, false
	}
	switch strings.ToLower(stmt.Word) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func decodeTuple(stmt statement.Statement) (primitives.Tuple, bool) {
	if stmt.ValueKind != statement.ValueTuple {
		return primitives.Tuple{}, false
	}
	t := primitives.Tuple{X: primitives.Dist(stmt.Number), Y: primitives.Dist(stmt.TupleY)}
	return t, t.Valid()
}

func decodeString(stmt statement.Statement) (string, bool) {
	if stmt.ValueKind != statement.ValueString {
		return "", false
	}
	return stmt.Str, true
}

func decodeInt(stmt statement.Statement) (int32, bool) {
	if stmt.ValueKind != statement.ValueNumber {
		return 0, false
	}
	return stmt.Number, true
}

func decodePadForm(stmt statement.Statement) (primitives.PadForm, bool) {
	switch stmt.ValueKind {
	case statement.ValueNumber:
		f := primitives.PadForm(stmt.Number)
		return f, f.Valid()
	case statement.ValueWord:
		return primitives.PadFormFromWord(stmt.Word)
	default:
		return 0, false
	}
}

func decodeTextStyle(stmt statement.Statement) (primitives.TextStyle, bool) {
	switch stmt.ValueKind {
	case statement.ValueNumber:
		s := primitives.TextStyle(stmt.Number)
		return s, s.Valid()
	case statement.ValueWord:
		return primitives.TextStyleFromWord(stmt.Word)
	default:
		return 0, false
	}
}

func decodeTextThickness(stmt statement.Statement) (primitives.TextThickness, bool) {
	switch stmt.ValueKind {
	case statement.ValueNumber:
		th := primitives.TextThickness(stmt.Number)
		return th, th.Valid()
	case statement.ValueWord:
		return primitives.TextThicknessFromWord(stmt.Word)
	default:
		return 0, false
	}
}

// tuplesFromIndexed flattens a sparse index->tuple map into the contiguous
// ascending slice the wire format requires (P0, P1, ... with no gaps).
func tuplesFromIndexed(m map[int32]primitives.Tuple) ([]primitives.Tuple, bool) {
	if len(m) == 0 {
		return nil, true
	}
	out := make([]primitives.Tuple, len(m))
	for i := range out {
		v, ok := m[int32(i)]
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// intsFromIndexed is tuplesFromIndexed's counterpart for connection ids.
func intsFromIndexed(m map[int32]int32) ([]int32, bool) {
	if len(m) == 0 {
		return nil, true
	}
	out := make([]int32, len(m))
	for i := range out {
		v, ok := m[int32(i)]
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
