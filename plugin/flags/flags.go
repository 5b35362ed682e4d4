// Package flags parses a plugin binary's argv into the board metadata the
// host hands every plugin at invocation: the board's size, its snap grid,
// its layer-plane flags, the process id and UI language of the host, and
// the input/output file paths the plugin is expected to read and write.
// It is built on cobra/pflag, the way the teacher's own CLI entry point
// parses its argv.
package flags

import (
	"io"

	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/pcb"
	"github.com/spf13/cobra"
)

// Metadata is the board context a plugin host passes to a plugin process:
// the board's physical size, its snap grid, its layer-plane flags, the
// host's process id and UI language, whether only the current selection
// should be processed, and the input/output paths to read and write.
type Metadata struct {
	Width         primitives.Dist
	Height        primitives.Dist
	GridX         primitives.Dist
	GridY         primitives.Dist
	GridPitch     primitives.Dist
	Flags         pcb.Flags
	Lang          string
	PID           int
	SelectionOnly bool
	Input         string
	Output        string
}

// Grid reassembles the parsed grid flags into a pcb.Grid, applying
// GridPitch to both the width and height cell dimension.
func (m *Metadata) Grid() pcb.Grid {
	return pcb.GridOf(primitives.TupleOf(m.GridX, m.GridY), m.GridPitch, m.GridPitch)
}

// Valid reports whether every scalar field parsed from argv is within the
// range the values it feeds (Board, Grid, Flags) requires.
func (m *Metadata) Valid() bool {
	return primitives.SizeValid(m.Width) && primitives.SizeValid(m.Height) &&
		m.Grid().Valid() && m.Flags.Valid() &&
		m.Input != "" && m.Output != ""
}

// Parse parses args — ordinarily a plugin binary's os.Args[1:] — into a
// Metadata, failing with errkind.PluginFlagsSyntax if argv cannot be
// parsed at all (including when the two positional input/output paths are
// not both given) and errkind.PluginFlagsMissing if argv parses but
// Metadata.Valid rejects the result (an out-of-range size or grid, unknown
// flag bits, or an empty path). Omitted size and grid flags default to 0.
func Parse(args []string) (*Metadata, error) {
	var (
		m        Metadata
		width    int32
		height   int32
		gridX    int32
		gridY    int32
		gridStep int32
		flagBits uint32
	)

	cmd := &cobra.Command{
		Use:           "plugin [flags] <input> <output>",
		Short:         "run a SprintLayout element-format plugin",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			m.Width = primitives.Dist(width)
			m.Height = primitives.Dist(height)
			m.GridX = primitives.Dist(gridX)
			m.GridY = primitives.Dist(gridY)
			m.GridPitch = primitives.Dist(gridStep)
			m.Flags = pcb.Flags(flagBits)
			m.Input = cmdArgs[0]
			m.Output = cmdArgs[1]
			return nil
		},
	}

	cmd.Flags().Int32Var(&width, "width", 0, "board width, raw distance units")
	cmd.Flags().Int32Var(&height, "height", 0, "board height, raw distance units")
	cmd.Flags().Int32Var(&gridX, "grid-x", 0, "snap grid origin X, raw distance units")
	cmd.Flags().Int32Var(&gridY, "grid-y", 0, "snap grid origin Y, raw distance units")
	cmd.Flags().Int32Var(&gridStep, "grid-pitch", 0, "snap grid cell size, raw distance units")
	cmd.Flags().Uint32Var(&flagBits, "flags", 0, "board plane/multilayer flags bitmask")
	cmd.Flags().StringVar(&m.Lang, "lang", "en", "host UI language")
	cmd.Flags().IntVar(&m.PID, "pid", 0, "host process id")
	cmd.Flags().BoolVar(&m.SelectionOnly, "selection-only", false, "operate on the host's current selection only")

	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err != nil {
		return nil, errkind.Wrap(errkind.PluginFlagsSyntax, errkind.Origin{}, err)
	}
	if !m.Valid() {
		return nil, errkind.New(errkind.PluginFlagsMissing)
	}
	return &m, nil
}
