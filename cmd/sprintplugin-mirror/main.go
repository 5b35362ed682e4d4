// Command sprintplugin-mirror mirrors every element it's given across
// the board's vertical centerline and asks the host to replace the
// selection with the mirrored result — a small but real transform
// exercising the full plugin life cycle end to end.
package main

import (
	"os"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/plugin/exitcode"
	"github.com/laminoid-pcb/sprintplugin/plugin/lifecycle"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	p := lifecycle.New()
	if err := p.Begin(args); err != nil {
		code, cerr := exitcode.ForLibraryFailure(int(p.State()))
		if cerr != nil {
			return exitcode.FailedLibraryStart
		}
		return code
	}

	mirrorGroup(p.Input, p.Metadata.Width)
	p.SetOutput(p.Input)
	return p.End(exitcode.ReplaceAbsolute)
}

// mirrorGroup mirrors every positional field of every element in g, in
// place, across the vertical line x = width/2.
func mirrorGroup(g elements.Group, width primitives.Dist) {
	for _, el := range g.Children {
		mirrorElement(el, width)
	}
}

func mirrorElement(el elements.Element, width primitives.Dist) {
	switch e := el.(type) {
	case *elements.Track:
		mirrorPoints(e.Points, width)
	case *elements.Zone:
		mirrorPoints(e.Points, width)
	case *elements.PadTHT:
		e.Position.X = mirrorX(e.Position.X, width)
	case *elements.PadSMT:
		e.Position.X = mirrorX(e.Position.X, width)
	case *elements.Text:
		e.Position.X = mirrorX(e.Position.X, width)
	case *elements.Circle:
		e.Center.X = mirrorX(e.Center.X, width)
	case *elements.Component:
		mirrorElement(e.TextID, width)
		mirrorElement(e.TextValue, width)
		for _, child := range e.Children {
			mirrorElement(child, width)
		}
	case *elements.Group:
		mirrorGroup(*e, width)
	}
}

func mirrorPoints(points []primitives.Tuple, width primitives.Dist) {
	for i := range points {
		points[i].X = mirrorX(points[i].X, width)
	}
}

func mirrorX(x, width primitives.Dist) primitives.Dist {
	return width - x
}
