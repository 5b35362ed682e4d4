package serial

import "github.com/laminoid-pcb/sprintplugin/internal/elements"

func (e *emitter) circle(c *elements.Circle) error {
	e.tag("CIRCLE", "circle")
	e.field("LAYER", "layer", c.Layer.Emit)
	e.field("WIDTH", "width", c.Width.Emit)
	e.field("CENTER", "center", c.Center.Emit)
	e.field("RADIUS", "radius", c.Radius.Emit)
	if c.Clear != elements.CircleDefaults.Clear {
		e.field("CLEAR", "clear", c.Clear.Emit)
	}
	if c.Cutout != elements.CircleDefaults.Cutout {
		e.boolField("CUTOUT", "cutout", c.Cutout)
	}
	if c.Soldermask != elements.CircleDefaults.Soldermask {
		e.boolField("SOLDERMASK", "soldermask", c.Soldermask)
	}
	if c.Start != elements.CircleDefaults.Start {
		e.field("START", "start", c.Start.Emit)
	}
	if c.Stop != elements.CircleDefaults.Stop {
		e.field("STOP", "stop", c.Stop.Emit)
	}
	if c.Fill != elements.CircleDefaults.Fill {
		e.boolField("FILL", "fill", c.Fill)
	}
	return e.end()
}
