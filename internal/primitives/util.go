package primitives

import "strings"

// foldLower case-folds word for case-insensitive keyword/enum lookups, the
// way every wire-format tag and field name comparison in this engine is
// specified to behave.
func foldLower(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
