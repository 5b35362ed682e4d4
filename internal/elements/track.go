package elements

import "github.com/laminoid-pcb/sprintplugin/internal/primitives"

// Track is a copper trace: a layer, a width, and an ordered polyline.
type Track struct {
	base

	// Required
	Layer  primitives.Layer
	Width  primitives.Dist
	Points []primitives.Tuple

	// Optional, with defaults applied by NewTrack
	Clear      primitives.Dist
	Cutout     bool
	Soldermask bool
	FlatStart  bool
	FlatEnd    bool
}

// TrackDefaults holds the documented optional-field defaults for Track.
var TrackDefaults = Track{
	Clear:      4000,
	Cutout:     false,
	Soldermask: false,
	FlatStart:  false,
	FlatEnd:    false,
}

func (t *Track) Type() Type { return TypeTrack }

func (t *Track) Valid() bool {
	return t.Layer.Valid() && primitives.SizeValid(t.Width) && primitives.SizeValid(t.Clear)
}

// NewTrack builds a Track from its required fields, installing the
// documented defaults for every optional field.
func NewTrack(layer primitives.Layer, width primitives.Dist, points []primitives.Tuple) (*Track, bool) {
	t := &Track{
		Layer:      layer,
		Width:      width,
		Points:     points,
		Clear:      TrackDefaults.Clear,
		Cutout:     TrackDefaults.Cutout,
		Soldermask: TrackDefaults.Soldermask,
		FlatStart:  TrackDefaults.FlatStart,
		FlatEnd:    TrackDefaults.FlatEnd,
	}
	return t, t.Valid()
}
