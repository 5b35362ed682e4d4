package serial

import (
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
)

// indentPerDepth mirrors SPRINT_ELEMENT_INDENT from the original C
// serializer: a closing END_COMPONENT/END_GROUP statement is indented two
// spaces per nesting level, in raw mode only.
const indentPerDepth = "  "

func (e *emitter) nested(cookedName string, el elements.Element) {
	if e.err != nil {
		return
	}
	if e.raw {
		e.err = emit(e.w, el, e.format, e.depth+1)
		return
	}
	e.sep()
	e.name("", cookedName)
	e.write("=")
	e.err = emit(e.w, el, e.format, e.depth+1)
}

func (e *emitter) childList(children []elements.Element) {
	if e.err != nil {
		return
	}
	if e.raw {
		for _, child := range children {
			if e.err = emit(e.w, child, e.format, e.depth+1); e.err != nil {
				return
			}
		}
		return
	}
	if len(children) == 0 {
		return
	}
	e.sep()
	e.write("children=[")
	for i, child := range children {
		if i > 0 {
			e.write(", ")
		}
		if e.err = emit(e.w, child, e.format, e.depth+1); e.err != nil {
			return
		}
	}
	e.write("]")
}

func (e *emitter) component(c *elements.Component) error {
	e.tag("BEGIN_COMPONENT", "component")
	// Comment and Package default to absent (nil); only an explicitly set
	// value is worth emitting.
	if c.Comment != nil {
		e.stringField("COMMENT", "comment", *c.Comment)
	}
	if c.UsePickplace != elements.ComponentDefaults.UsePickplace {
		e.boolField("USE_PICKPLACE", "use pickplace", c.UsePickplace)
	}
	if c.Package != nil {
		e.stringField("PACKAGE", "package", *c.Package)
	}
	if c.Rotation != elements.ComponentDefaults.Rotation {
		e.field("ROTATION", "rotation", c.Rotation.Emit)
	}

	if e.raw {
		e.write(";")
	}
	e.nested("id_text", c.TextID)
	e.nested("value_text", c.TextValue)
	e.childList(c.Children)

	if e.err != nil {
		return e.err
	}
	if e.raw {
		e.write(strings.Repeat(indentPerDepth, e.depth) + "END_COMPONENT;")
		return e.err
	}
	e.write("}")
	return e.err
}
