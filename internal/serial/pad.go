package serial

import (
	"fmt"
	"io"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
)

func (e *emitter) padTHT(p *elements.PadTHT) error {
	e.tag("PAD", "pad")
	e.field("LAYER", "layer", p.Layer.Emit)
	e.field("POS", "position", p.Position.Emit)
	e.field("SIZE", "size", p.Size.Emit)
	e.field("DRILL", "drill", p.Drill.Emit)
	e.field("FORM", "form", p.Form.Emit)
	if p.Clear != elements.PadTHTDefaults.Clear {
		e.field("CLEAR", "clear", p.Clear.Emit)
	}
	if p.Soldermask != elements.PadTHTDefaults.Soldermask {
		e.boolField("SOLDERMASK", "soldermask", p.Soldermask)
	}
	if p.Rotation != elements.PadTHTDefaults.Rotation {
		e.field("ROTATION", "rotation", p.Rotation.Emit)
	}
	if p.Via != elements.PadTHTDefaults.Via {
		e.boolField("VIA", "via", p.Via)
	}
	if p.Thermal != elements.PadTHTDefaults.Thermal {
		e.boolField("THERMAL", "thermal", p.Thermal)
	}
	if p.ThermalTracks != elements.PadTHTDefaults.ThermalTracks {
		e.intField("THERMAL_TRACKS", "tracks", p.ThermalTracks)
	}
	if p.ThermalTracksWidth != elements.PadTHTDefaults.ThermalTracksWidth {
		e.field("THERMAL_TRACKS_WIDTH", "tracks width", p.ThermalTracksWidth.Emit)
	}
	if p.ThermalTracksIndividual != elements.PadTHTDefaults.ThermalTracksIndividual {
		e.boolField("THERMAL_TRACKS_INDIVIDUAL", "tracks individual", p.ThermalTracksIndividual)
	}
	if p.Link.HasID {
		e.intField("PAD_ID", "pad ID", p.Link.ID)
	}
	for i, c := range p.Link.Connections {
		i, c := i, c
		e.indexedField("CON", "con", i, func(w io.Writer, _ primitives.Format) error {
			_, err := fmt.Fprintf(w, "%d", c)
			return err
		})
	}
	return e.end()
}

func (e *emitter) padSMT(p *elements.PadSMT) error {
	e.tag("SMDPAD", "smdpad")
	e.field("LAYER", "layer", p.Layer.Emit)
	e.field("POS", "position", p.Position.Emit)
	e.field("SIZE_X", "size x", p.Width.Emit)
	e.field("SIZE_Y", "size y", p.Height.Emit)
	if p.Clear != elements.PadSMTDefaults.Clear {
		e.field("CLEAR", "clear", p.Clear.Emit)
	}
	if p.Soldermask != elements.PadSMTDefaults.Soldermask {
		e.boolField("SOLDERMASK", "soldermask", p.Soldermask)
	}
	if p.Rotation != elements.PadSMTDefaults.Rotation {
		e.field("ROTATION", "rotation", p.Rotation.Emit)
	}
	if p.Thermal != elements.PadSMTDefaults.Thermal {
		e.boolField("THERMAL", "thermal", p.Thermal)
	}
	if p.ThermalTracks != elements.PadSMTDefaults.ThermalTracks {
		e.intField("THERMAL_TRACKS", "tracks", p.ThermalTracks)
	}
	if p.ThermalTracksWidth != elements.PadSMTDefaults.ThermalTracksWidth {
		e.field("THERMAL_TRACKS_WIDTH", "tracks width", p.ThermalTracksWidth.Emit)
	}
	if p.Link.HasID {
		e.intField("PAD_ID", "pad ID", p.Link.ID)
	}
	for i, c := range p.Link.Connections {
		i, c := i, c
		e.indexedField("CON", "con", i, func(w io.Writer, _ primitives.Format) error {
			_, err := fmt.Fprintf(w, "%d", c)
			return err
		})
	}
	return e.end()
}
