package serial

import (
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
)

func (e *emitter) group(g *elements.Group) error {
	e.tag("GROUP", "group")
	if e.raw {
		e.write(";")
	}
	e.childList(g.Children)

	if e.err != nil {
		return e.err
	}
	if e.raw {
		e.write(strings.Repeat(indentPerDepth, e.depth) + "END_GROUP;")
		return e.err
	}
	e.write("}")
	return e.err
}
