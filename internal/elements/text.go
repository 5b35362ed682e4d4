package elements

import "github.com/laminoid-pcb/sprintplugin/internal/primitives"

// Text is a text annotation. Subtype distinguishes a free-standing text
// element from the id/value slots of a Component. Neither the parser nor
// Valid restricts where a subtype appears: an ID_TEXT or VALUE_TEXT outside
// a Component parses as a free Text with that subtype, and Valid only
// checks the scalar fields every subtype shares.
type Text struct {
	base

	// Required
	Subtype  primitives.TextSubtype
	Layer    primitives.Layer
	Position primitives.Tuple
	Height   primitives.Dist
	Text     string

	// Optional
	Clear            primitives.Dist
	Cutout           bool
	Soldermask       bool
	Style            primitives.TextStyle
	Thickness        primitives.TextThickness
	Rotation         primitives.Angle
	MirrorHorizontal bool
	MirrorVertical   bool
	Visible          bool
}

// TextDefaults holds the documented optional-field defaults for Text.
var TextDefaults = Text{
	Clear:            4000,
	Cutout:           false,
	Soldermask:       false,
	Style:            primitives.TextStyleRegular,
	Thickness:        primitives.TextThicknessRegular,
	Rotation:         0,
	MirrorHorizontal: false,
	MirrorVertical:   false,
	Visible:          true,
}

func (t *Text) Type() Type { return TypeText }

func (t *Text) Valid() bool {
	return t.Subtype.Valid() && t.Layer.Valid() && t.Position.Valid() &&
		primitives.SizeValid(t.Height) && primitives.SizeValid(t.Clear) &&
		t.Style.Valid() && t.Thickness.Valid() && t.Rotation.Valid()
}

// NewText builds a Text from its required fields, installing defaults.
func NewText(subtype primitives.TextSubtype, layer primitives.Layer, position primitives.Tuple, height primitives.Dist, text string) (*Text, bool) {
	t := &Text{
		Subtype:          subtype,
		Layer:            layer,
		Position:         position,
		Height:           height,
		Text:             text,
		Clear:            TextDefaults.Clear,
		Cutout:           TextDefaults.Cutout,
		Soldermask:       TextDefaults.Soldermask,
		Style:            TextDefaults.Style,
		Thickness:        TextDefaults.Thickness,
		Rotation:         TextDefaults.Rotation,
		MirrorHorizontal: TextDefaults.MirrorHorizontal,
		MirrorVertical:   TextDefaults.MirrorVertical,
		Visible:          TextDefaults.Visible,
	}
	return t, t.Valid()
}
