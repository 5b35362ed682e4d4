package parser

import (
	"sort"
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

type tagEntry struct {
	kind    elements.Type
	subtype primitives.TextSubtype
	closing bool
}

// tagTable maps every element tag keyword (already uppercased) to the case
// and, for Text, the subtype it selects.
var tagTable = map[string]tagEntry{
	"TRACK":           {kind: elements.TypeTrack},
	"PAD":             {kind: elements.TypePadTHT},
	"SMDPAD":          {kind: elements.TypePadSMT},
	"ZONE":            {kind: elements.TypeZone},
	"TEXT":            {kind: elements.TypeText, subtype: primitives.TextRegular},
	"ID_TEXT":         {kind: elements.TypeText, subtype: primitives.TextID},
	"VALUE_TEXT":      {kind: elements.TypeText, subtype: primitives.TextValue},
	"CIRCLE":          {kind: elements.TypeCircle},
	"BEGIN_COMPONENT": {kind: elements.TypeComponent},
	"END_COMPONENT":   {kind: elements.TypeComponent, closing: true},
	"GROUP":           {kind: elements.TypeGroup},
	"END_GROUP":       {kind: elements.TypeGroup, closing: true},
}

var tagWords = tagWordList()

func tagWordList() []string {
	words := make([]string, 0, len(tagTable))
	for w := range tagTable {
		words = append(words, w)
	}
	return words
}

func normalizeTag(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// suggestTag returns a " - did you mean ...?" hint for an unrecognized tag
// word, or "" when nothing in the table is close enough to be useful.
func suggestTag(word string) string {
	matches := fuzzy.RankFindNormalizedFold(normalizeTag(word), tagWords)
	if len(matches) == 0 {
		return ""
	}
	sort.Sort(matches)
	return " - did you mean " + matches[0].Target + "?"
}
