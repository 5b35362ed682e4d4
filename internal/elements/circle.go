package elements

import "github.com/laminoid-pcb/sprintplugin/internal/primitives"

// Circle is an arc or full circle: Start == Stop == 0 denotes a complete
// circle (the common case); unequal bounds draw an arc between them.
type Circle struct {
	base

	// Required
	Layer  primitives.Layer
	Width  primitives.Dist
	Center primitives.Tuple
	Radius primitives.Dist

	// Optional
	Clear      primitives.Dist
	Cutout     bool
	Soldermask bool
	Start      primitives.Angle
	Stop       primitives.Angle
	Fill       bool
}

// CircleDefaults holds the documented optional-field defaults for Circle.
var CircleDefaults = Circle{
	Clear:      4000,
	Cutout:     false,
	Soldermask: false,
	Start:      0,
	Stop:       0,
	Fill:       false,
}

func (c *Circle) Type() Type { return TypeCircle }

func (c *Circle) Valid() bool {
	return c.Layer.Valid() && primitives.SizeValid(c.Width) && c.Center.Valid() &&
		primitives.SizeValid(c.Radius) && primitives.SizeValid(c.Clear) &&
		c.Start.Valid() && c.Stop.Valid()
}

// NewCircle builds a Circle from its required fields, installing defaults.
func NewCircle(layer primitives.Layer, width primitives.Dist, center primitives.Tuple, radius primitives.Dist) (*Circle, bool) {
	c := &Circle{
		Layer:      layer,
		Width:      width,
		Center:     center,
		Radius:     radius,
		Clear:      CircleDefaults.Clear,
		Cutout:     CircleDefaults.Cutout,
		Soldermask: CircleDefaults.Soldermask,
		Start:      CircleDefaults.Start,
		Stop:       CircleDefaults.Stop,
		Fill:       CircleDefaults.Fill,
	}
	return c, c.Valid()
}
