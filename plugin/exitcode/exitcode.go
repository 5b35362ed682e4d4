// Package exitcode maps a plugin's requested Operation, and its failure
// paths, to the process exit code the host reads to decide what to do
// with a plugin's output: replace the selection, add elements, or do
// nothing.
package exitcode

import "fmt"

// Operation is what a plugin asks the host to do with its output once it
// exits cleanly.
type Operation int

const (
	// None performs no operation; no output file should be written.
	None Operation = iota
	// ReplaceAbsolute replaces the input elements with the output elements.
	ReplaceAbsolute
	// AddAbsolute adds the output elements at their specified positions.
	AddAbsolute
	// ReplaceRelative removes the input elements and lets the user place
	// the output elements freely.
	ReplaceRelative
	// AddRelative lets the user place the new output elements freely.
	AddRelative
)

var operationNames = [...]string{
	None:             "no operation",
	ReplaceAbsolute:  "replace absolute",
	AddAbsolute:      "add absolute",
	ReplaceRelative:  "replace relative",
	AddRelative:      "add relative",
}

func (op Operation) String() string {
	if !op.Valid() {
		return "unknown"
	}
	return operationNames[op]
}

// Valid reports whether op is one of the five success operations.
func (op Operation) Valid() bool { return op >= None && op <= AddRelative }

const (
	// FailedLibraryStart is the first exit code reserved for a failure the
	// library itself reports, tagged by the plugin life-cycle state active
	// when the failure occurred.
	FailedLibraryStart = 128
	// FailedPluginStart is the first exit code a plugin may use for its own
	// failure reporting.
	FailedPluginStart = 144
	// FailedEnd is the last exit code in the failure range.
	FailedEnd = 255

	// maxLibraryStates bounds FailedLibraryStart's state-tagged sub-range;
	// a state ordinal outside [0, maxLibraryStates) would spill into the
	// plugin-reserved range and is rejected instead.
	maxLibraryStates = FailedPluginStart - FailedLibraryStart
)

// ForOperation returns op's exit code, valid only for the five success
// operations.
func ForOperation(op Operation) (int, error) {
	if !op.Valid() {
		return 0, fmt.Errorf("exitcode: invalid operation %d", int(op))
	}
	return int(op), nil
}

// ForLibraryFailure returns the exit code for a failure the library itself
// detected while in life-cycle state stateOrdinal, tagging the code with
// the state the way the host's diagnostics expect.
func ForLibraryFailure(stateOrdinal int) (int, error) {
	if stateOrdinal < 0 || stateOrdinal >= maxLibraryStates {
		return 0, fmt.Errorf("exitcode: state ordinal %d out of library failure range", stateOrdinal)
	}
	return FailedLibraryStart + stateOrdinal, nil
}

// ForPluginFailure validates a plugin-chosen failure code against the
// plugin-reserved sub-range.
func ForPluginFailure(code int) (int, error) {
	if code < FailedPluginStart || code > FailedEnd {
		return 0, fmt.Errorf("exitcode: code %d out of plugin failure range [%d, %d]", code, FailedPluginStart, FailedEnd)
	}
	return code, nil
}
