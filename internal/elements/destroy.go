package elements

import "github.com/laminoid-pcb/sprintplugin/internal/errkind"

// Destroy tears down e post-order, bounded by MaxDepth. Go's garbage
// collector reclaims every owned slice, string, and child element once
// nothing references them, so Destroy does no manual freeing; it exists to
// preserve the teardown contract — in particular the recursion-depth cap
// shared with the parser — and to sever Component/Group child slices
// eagerly rather than waiting on a GC cycle, which matters for a
// long-lived plugin process that tears down one document before parsing
// the next.
func Destroy(e Element) error {
	return destroy(e, 0)
}

func destroy(e Element, depth int) error {
	if depth >= MaxDepth {
		return errkind.New(errkind.Recursion)
	}
	switch v := e.(type) {
	case *Component:
		if v.TextID != nil {
			if err := destroy(v.TextID, depth+1); err != nil {
				return err
			}
		}
		if v.TextValue != nil {
			if err := destroy(v.TextValue, depth+1); err != nil {
				return err
			}
		}
		for _, child := range v.Children {
			if err := destroy(child, depth+1); err != nil {
				return err
			}
		}
		v.TextID, v.TextValue, v.Children = nil, nil, nil
	case *Group:
		for _, child := range v.Children {
			if err := destroy(child, depth+1); err != nil {
				return err
			}
		}
		v.Children = nil
	}
	return nil
}
