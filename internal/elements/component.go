package elements

import "github.com/laminoid-pcb/sprintplugin/internal/primitives"

// Component groups a text id/value pair and child elements under one
// rotation, as a single placeable unit (a footprint instance).
type Component struct {
	base

	// Required
	TextID    *Text
	TextValue *Text
	Children  []Element

	// Optional
	Comment      *string
	UsePickplace bool
	Package      *string
	Rotation     primitives.Angle
}

// ComponentDefaults holds the documented optional-field defaults for
// Component. Comment and Package default to absent (nil).
var ComponentDefaults = Component{
	Comment:      nil,
	UsePickplace: false,
	Package:      nil,
	Rotation:     0,
}

func (c *Component) Type() Type { return TypeComponent }

// Valid checks the scalar invariants and recurses into children, bounded
// by MaxDepth so a pathologically deep tree cannot blow the stack even
// when validated outside the parser's own depth-counted descent.
func (c *Component) Valid() bool { return c.valid(0) }

func (c *Component) valid(depth int) bool {
	if depth >= MaxDepth {
		return false
	}
	if c.TextID == nil || c.TextValue == nil {
		return false
	}
	if !c.TextID.Valid() || !c.TextValue.Valid() {
		return false
	}
	if !c.Rotation.Valid() {
		return false
	}
	for _, child := range c.Children {
		if d, ok := child.(depthValidator); ok {
			if !d.valid(depth + 1) {
				return false
			}
		} else if !child.Valid() {
			return false
		}
	}
	return true
}

// depthValidator is implemented by the two recursive cases (Component,
// Group) so Valid can descend with a shared depth counter instead of
// re-entering at depth zero for every nested container.
type depthValidator interface {
	valid(depth int) bool
}

// NewComponent builds a Component from its required fields, installing
// defaults for the optional ones.
func NewComponent(textID, textValue *Text, children []Element) (*Component, bool) {
	c := &Component{
		TextID:       textID,
		TextValue:    textValue,
		Children:     children,
		Comment:      ComponentDefaults.Comment,
		UsePickplace: ComponentDefaults.UsePickplace,
		Package:      ComponentDefaults.Package,
		Rotation:     ComponentDefaults.Rotation,
	}
	return c, c.Valid()
}
