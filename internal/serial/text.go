package serial

import (
	"fmt"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
)

func (e *emitter) text(t *elements.Text) error {
	rawTag, cookedTag, err := textTagNames(t.Subtype)
	if err != nil {
		return err
	}
	e.tag(rawTag, cookedTag)
	e.field("LAYER", "layer", t.Layer.Emit)
	e.field("POS", "position", t.Position.Emit)
	e.field("HEIGHT", "height", t.Height.Emit)
	e.stringField("TEXT", "text", t.Text)
	if t.Clear != elements.TextDefaults.Clear {
		e.field("CLEAR", "clear", t.Clear.Emit)
	}
	if t.Cutout != elements.TextDefaults.Cutout {
		e.boolField("CUTOUT", "cutout", t.Cutout)
	}
	if t.Soldermask != elements.TextDefaults.Soldermask {
		e.boolField("SOLDERMASK", "soldermask", t.Soldermask)
	}
	if t.Style != elements.TextDefaults.Style {
		e.field("STYLE", "style", t.Style.Emit)
	}
	if t.Thickness != elements.TextDefaults.Thickness {
		e.field("THICKNESS", "thickness", t.Thickness.Emit)
	}
	if t.Rotation != elements.TextDefaults.Rotation {
		e.field("ROTATION", "rotation", t.Rotation.Emit)
	}
	if t.MirrorHorizontal != elements.TextDefaults.MirrorHorizontal {
		e.boolField("MIRROR_HORIZONTAL", "mirror horizontal", t.MirrorHorizontal)
	}
	if t.MirrorVertical != elements.TextDefaults.MirrorVertical {
		e.boolField("MIRROR_VERTICAL", "mirror vertical", t.MirrorVertical)
	}
	if t.Visible != elements.TextDefaults.Visible {
		e.boolField("VISIBLE", "visible", t.Visible)
	}
	return e.end()
}

func textTagNames(subtype primitives.TextSubtype) (raw, cooked string, err error) {
	switch subtype {
	case primitives.TextRegular:
		return "TEXT", "text", nil
	case primitives.TextID:
		return "ID_TEXT", "id_text", nil
	case primitives.TextValue:
		return "VALUE_TEXT", "value_text", nil
	default:
		return "", "", fmt.Errorf("serial: invalid text subtype %d", subtype)
	}
}
