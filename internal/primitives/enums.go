package primitives

import (
	"fmt"
	"io"
)

// PadForm is the through-hole pad shape.
type PadForm int

const (
	PadFormRound PadForm = iota + 1
	PadFormOctagon
	PadFormSquare
	PadFormTransverseRounded
	PadFormTransverseOctagon
	PadFormTransverseRectangular
	PadFormHighRounded
	PadFormHighOctagon
	PadFormHighRectangular
)

var padFormNames = map[PadForm]string{
	PadFormRound:                 "round",
	PadFormOctagon:               "octagon",
	PadFormSquare:                "square",
	PadFormTransverseRounded:     "transverse rounded",
	PadFormTransverseOctagon:     "transverse octagon",
	PadFormTransverseRectangular: "transverse rectangular",
	PadFormHighRounded:           "high rounded",
	PadFormHighOctagon:           "high octagon",
	PadFormHighRectangular:       "high rectangular",
}

var padFormWords = reverseMap(padFormNames)

func (f PadForm) Valid() bool { return f >= PadFormRound && f <= PadFormHighRectangular }

func PadFormFromWord(word string) (PadForm, bool) {
	f, ok := padFormWords[foldLower(word)]
	return f, ok
}

func (f PadForm) Emit(w io.Writer, format Format) error {
	if !f.Valid() {
		return fmt.Errorf("invalid pad form %d", f)
	}
	if format == FormatRaw {
		_, err := fmt.Fprintf(w, "%d", int(f))
		return err
	}
	_, err := io.WriteString(w, padFormNames[f])
	return err
}

// TextSubtype distinguishes a free-standing Text element from the two
// dedicated slots a Component carries (its reference designator and its
// value label).
type TextSubtype int

const (
	TextRegular TextSubtype = iota
	TextID
	TextValue
)

var textSubtypeNames = map[TextSubtype]string{
	TextRegular: "regular",
	TextID:      "id",
	TextValue:   "value",
}

// textSubtypeKeywords are the element tag keywords that select a subtype;
// ID_TEXT and VALUE_TEXT are only meaningful as element tags, never as a
// field value (see SPEC_FULL.md Open Question (b)).
var textSubtypeKeywords = map[TextSubtype]string{
	TextRegular: "TEXT",
	TextID:      "ID_TEXT",
	TextValue:   "VALUE_TEXT",
}

func (t TextSubtype) Valid() bool { return t >= TextRegular && t <= TextValue }

func (t TextSubtype) Keyword() string { return textSubtypeKeywords[t] }

func (t TextSubtype) Emit(w io.Writer, format Format) error {
	if !t.Valid() {
		return fmt.Errorf("invalid text subtype %d", t)
	}
	if format == FormatRaw {
		_, err := fmt.Fprintf(w, "%d", int(t))
		return err
	}
	_, err := io.WriteString(w, textSubtypeNames[t])
	return err
}

// TextStyle is the stroke width of a Text element.
type TextStyle int

const (
	TextStyleNarrow TextStyle = iota
	TextStyleRegular
	TextStyleWide
)

var textStyleNames = map[TextStyle]string{
	TextStyleNarrow:  "narrow",
	TextStyleRegular: "regular",
	TextStyleWide:    "wide",
}

var textStyleWords = reverseMap(textStyleNames)

func (s TextStyle) Valid() bool { return s >= TextStyleNarrow && s <= TextStyleWide }

func TextStyleFromWord(word string) (TextStyle, bool) {
	s, ok := textStyleWords[foldLower(word)]
	return s, ok
}

func (s TextStyle) Emit(w io.Writer, format Format) error {
	if !s.Valid() {
		return fmt.Errorf("invalid text style %d", s)
	}
	if format == FormatRaw {
		_, err := fmt.Fprintf(w, "%d", int(s))
		return err
	}
	_, err := io.WriteString(w, textStyleNames[s])
	return err
}

// TextThickness is the stroke thickness of a Text element.
type TextThickness int

const (
	TextThicknessThin TextThickness = iota
	TextThicknessRegular
	TextThicknessThick
)

var textThicknessNames = map[TextThickness]string{
	TextThicknessThin:    "thin",
	TextThicknessRegular: "regular",
	TextThicknessThick:   "thick",
}

var textThicknessWords = reverseMap(textThicknessNames)

func (t TextThickness) Valid() bool {
	return t >= TextThicknessThin && t <= TextThicknessThick
}

func TextThicknessFromWord(word string) (TextThickness, bool) {
	t, ok := textThicknessWords[foldLower(word)]
	return t, ok
}

func (t TextThickness) Emit(w io.Writer, format Format) error {
	if !t.Valid() {
		return fmt.Errorf("invalid text thickness %d", t)
	}
	if format == FormatRaw {
		_, err := fmt.Fprintf(w, "%d", int(t))
		return err
	}
	_, err := io.WriteString(w, textThicknessNames[t])
	return err
}

func reverseMap[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
