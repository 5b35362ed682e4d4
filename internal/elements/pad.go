package elements

import "github.com/laminoid-pcb/sprintplugin/internal/primitives"

const (
	thermalTracksWidthMin primitives.Dist = 50
	thermalTracksWidthMax primitives.Dist = 300
	thermalTracksSMTMax   int32           = 0xff
)

// PadTHT is a plated through-hole pad.
type PadTHT struct {
	base

	// Required
	Layer  primitives.Layer
	Position primitives.Tuple
	Size   primitives.Dist
	Drill  primitives.Dist
	Form   primitives.PadForm

	// Optional
	Link                    Link
	Clear                   primitives.Dist
	Soldermask              bool
	Rotation                primitives.Angle
	Via                     bool
	Thermal                 bool
	ThermalTracks           int32
	ThermalTracksWidth      primitives.Dist
	ThermalTracksIndividual bool
}

// PadTHTDefaults holds the documented optional-field defaults for PadTHT.
var PadTHTDefaults = PadTHT{
	Clear:                   4000,
	Soldermask:              true,
	Rotation:                0,
	Via:                     false,
	Thermal:                 false,
	ThermalTracks:           0x55555555,
	ThermalTracksWidth:      100,
	ThermalTracksIndividual: false,
}

func (p *PadTHT) Type() Type { return TypePadTHT }

func (p *PadTHT) Valid() bool {
	return p.Layer.Valid() && p.Position.Valid() && primitives.SizeValid(p.Size) &&
		primitives.SizeValid(p.Drill) && p.Form.Valid() && p.Link.valid() &&
		primitives.SizeValid(p.Clear) && p.Rotation.Valid() &&
		p.ThermalTracksWidth >= thermalTracksWidthMin && p.ThermalTracksWidth <= thermalTracksWidthMax
}

// NewPadTHT builds a PadTHT from its required fields, installing defaults.
func NewPadTHT(layer primitives.Layer, position primitives.Tuple, size, drill primitives.Dist, form primitives.PadForm) (*PadTHT, bool) {
	p := &PadTHT{
		Layer:                   layer,
		Position:                position,
		Size:                    size,
		Drill:                   drill,
		Form:                    form,
		Clear:                   PadTHTDefaults.Clear,
		Soldermask:              PadTHTDefaults.Soldermask,
		Rotation:                PadTHTDefaults.Rotation,
		Via:                     PadTHTDefaults.Via,
		Thermal:                 PadTHTDefaults.Thermal,
		ThermalTracks:           PadTHTDefaults.ThermalTracks,
		ThermalTracksWidth:      PadTHTDefaults.ThermalTracksWidth,
		ThermalTracksIndividual: PadTHTDefaults.ThermalTracksIndividual,
	}
	return p, p.Valid()
}

// PadSMT is a surface-mount pad.
type PadSMT struct {
	base

	// Required
	Layer    primitives.Layer
	Position primitives.Tuple
	Width    primitives.Dist
	Height   primitives.Dist

	// Optional
	Link               Link
	Clear              primitives.Dist
	Soldermask         bool
	Rotation           primitives.Angle
	Thermal            bool
	ThermalTracks      int32
	ThermalTracksWidth primitives.Dist
}

// PadSMTDefaults holds the documented optional-field defaults for PadSMT.
var PadSMTDefaults = PadSMT{
	Clear:              4000,
	Soldermask:         true,
	Rotation:           0,
	Thermal:            false,
	ThermalTracks:      0x55,
	ThermalTracksWidth: 100,
}

func (p *PadSMT) Type() Type { return TypePadSMT }

func (p *PadSMT) Valid() bool {
	return p.Layer.Valid() && p.Position.Valid() && primitives.SizeValid(p.Width) &&
		primitives.SizeValid(p.Height) && p.Link.valid() && primitives.SizeValid(p.Clear) &&
		p.Rotation.Valid() && p.ThermalTracks >= 0 && p.ThermalTracks <= thermalTracksSMTMax &&
		p.ThermalTracksWidth >= thermalTracksWidthMin && p.ThermalTracksWidth <= thermalTracksWidthMax
}

// NewPadSMT builds a PadSMT from its required fields, installing defaults.
func NewPadSMT(layer primitives.Layer, position primitives.Tuple, width, height primitives.Dist) (*PadSMT, bool) {
	p := &PadSMT{
		Layer:              layer,
		Position:           position,
		Width:              width,
		Height:             height,
		Clear:              PadSMTDefaults.Clear,
		Soldermask:         PadSMTDefaults.Soldermask,
		Rotation:           PadSMTDefaults.Rotation,
		Thermal:            PadSMTDefaults.Thermal,
		ThermalTracks:      PadSMTDefaults.ThermalTracks,
		ThermalTracksWidth: PadSMTDefaults.ThermalTracksWidth,
	}
	return p, p.Valid()
}
