package serial

import (
	"io"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
)

func (e *emitter) track(t *elements.Track) error {
	e.tag("TRACK", "track")
	e.field("LAYER", "layer", t.Layer.Emit)
	e.field("WIDTH", "width", t.Width.Emit)
	if t.Clear != elements.TrackDefaults.Clear {
		e.field("CLEAR", "clear", t.Clear.Emit)
	}
	if t.Cutout != elements.TrackDefaults.Cutout {
		e.boolField("CUTOUT", "cutout", t.Cutout)
	}
	if t.Soldermask != elements.TrackDefaults.Soldermask {
		e.boolField("SOLDERMASK", "soldermask", t.Soldermask)
	}
	if t.FlatStart != elements.TrackDefaults.FlatStart {
		e.boolField("FLATSTART", "flat start", t.FlatStart)
	}
	if t.FlatEnd != elements.TrackDefaults.FlatEnd {
		e.boolField("FLATEND", "flat end", t.FlatEnd)
	}
	for i, pt := range t.Points {
		i, pt := i, pt
		e.indexedField("P", "p", i, func(w io.Writer, f primitives.Format) error { return pt.Emit(w, f) })
	}
	return e.end()
}
