package elements

import "github.com/laminoid-pcb/sprintplugin/internal/primitives"

// Zone is a filled copper polygon.
type Zone struct {
	base

	// Required
	Layer  primitives.Layer
	Width  primitives.Dist
	Points []primitives.Tuple

	// Optional
	Clear      primitives.Dist
	Cutout     bool
	Soldermask bool
	Hatch      bool
	HatchAuto  bool
	HatchWidth primitives.Dist
}

// ZoneDefaults holds the documented optional-field defaults for Zone.
// HatchWidth has no documented nonzero default in the original (it is left
// zeroed unless Hatch is set and HatchAuto is cleared).
var ZoneDefaults = Zone{
	Clear:      4000,
	Cutout:     false,
	Soldermask: false,
	Hatch:      false,
	HatchAuto:  true,
	HatchWidth: 0,
}

func (z *Zone) Type() Type { return TypeZone }

func (z *Zone) Valid() bool {
	return z.Layer.Valid() && primitives.SizeValid(z.Width) && primitives.SizeValid(z.Clear)
}

// NewZone builds a Zone from its required fields, installing defaults.
func NewZone(layer primitives.Layer, width primitives.Dist, points []primitives.Tuple) (*Zone, bool) {
	z := &Zone{
		Layer:      layer,
		Width:      width,
		Points:     points,
		Clear:      ZoneDefaults.Clear,
		Cutout:     ZoneDefaults.Cutout,
		Soldermask: ZoneDefaults.Soldermask,
		Hatch:      ZoneDefaults.Hatch,
		HatchAuto:  ZoneDefaults.HatchAuto,
		HatchWidth: ZoneDefaults.HatchWidth,
	}
	return z, z.Valid()
}
