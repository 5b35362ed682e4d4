package primitives

import (
	"fmt"
	"io"
)

// Layer is one of the seven fixed drawing planes a PCB element is assigned
// to. Encoded raw as its 1-based integer index.
type Layer int

const (
	LayerCopperTop Layer = iota + 1
	LayerSilkscreenTop
	LayerCopperBottom
	LayerSilkscreenBottom
	LayerCopperInner1
	LayerCopperInner2
	LayerMechanical
)

var layerNames = map[Layer]string{
	LayerCopperTop:        "top copper",
	LayerSilkscreenTop:    "top silkscreen",
	LayerCopperBottom:     "bottom copper",
	LayerSilkscreenBottom: "bottom silkscreen",
	LayerCopperInner1:     "inner copper 1",
	LayerCopperInner2:     "inner copper 2",
	LayerMechanical:       "mechanical outline",
}

// layerWords maps the case-folded cooked/keyword spelling of a layer back
// to its value, for the parser's LAYER=<name> path (layers may also be
// given as their raw integer index).
var layerWords = map[string]Layer{
	"top copper":         LayerCopperTop,
	"top silkscreen":     LayerSilkscreenTop,
	"bottom copper":      LayerCopperBottom,
	"bottom silkscreen":  LayerSilkscreenBottom,
	"inner copper 1":     LayerCopperInner1,
	"inner copper 2":     LayerCopperInner2,
	"mechanical outline": LayerMechanical,
	"mechanical":         LayerMechanical,
}

// Valid reports whether l is one of the seven defined layers.
func (l Layer) Valid() bool {
	return l >= LayerCopperTop && l <= LayerMechanical
}

// LayerFromWord looks up a layer by its cooked/keyword name, case-insensitively.
func LayerFromWord(word string) (Layer, bool) {
	l, ok := layerWords[foldLower(word)]
	return l, ok
}

func (l Layer) Emit(w io.Writer, format Format) error {
	if !l.Valid() {
		return fmt.Errorf("invalid layer %d", l)
	}
	if format == FormatRaw {
		_, err := fmt.Fprintf(w, "%d", int(l))
		return err
	}
	_, err := io.WriteString(w, layerNames[l])
	return err
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layer(%d)", int(l))
}
