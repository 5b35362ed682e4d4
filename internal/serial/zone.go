package serial

import (
	"io"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
)

func (e *emitter) zone(z *elements.Zone) error {
	e.tag("ZONE", "zone")
	e.field("LAYER", "layer", z.Layer.Emit)
	e.field("WIDTH", "width", z.Width.Emit)
	if z.Clear != elements.ZoneDefaults.Clear {
		e.field("CLEAR", "clear", z.Clear.Emit)
	}
	if z.Cutout != elements.ZoneDefaults.Cutout {
		e.boolField("CUTOUT", "cutout", z.Cutout)
	}
	if z.Soldermask != elements.ZoneDefaults.Soldermask {
		e.boolField("SOLDERMASK", "soldermask", z.Soldermask)
	}
	if z.Hatch != elements.ZoneDefaults.Hatch {
		e.boolField("HATCH", "hatch", z.Hatch)
	}
	if z.HatchAuto != elements.ZoneDefaults.HatchAuto {
		e.boolField("HATCH_AUTO", "hatch auto", z.HatchAuto)
	}
	if z.HatchWidth != elements.ZoneDefaults.HatchWidth {
		e.field("HATCH_WIDTH", "hatch width", z.HatchWidth.Emit)
	}
	for i, pt := range z.Points {
		i, pt := i, pt
		e.indexedField("P", "p", i, func(w io.Writer, f primitives.Format) error { return pt.Emit(w, f) })
	}
	return e.end()
}
