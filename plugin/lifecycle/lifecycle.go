// Package lifecycle drives a plugin process end to end: parsing its argv
// into board metadata, parsing its input file into an element tree,
// handing control to the plugin's own transform, and writing its output
// and exit code once the plugin is done. The core element-format engine
// never reads this state itself; only the diagnostic logger labels its
// messages with it.
package lifecycle

import (
	"os"

	"github.com/laminoid-pcb/sprintplugin/internal/diagnostic"
	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/parser"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/serial"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
	"github.com/laminoid-pcb/sprintplugin/plugin/exitcode"
	"github.com/laminoid-pcb/sprintplugin/plugin/flags"
)

// State is a plugin process's position in its life cycle.
type State int

const (
	Uninitialized State = iota
	ParsingFlags
	ParsingInput
	Processing
	WritingOutput
	Completed
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	ParsingFlags:  "parsing flags",
	ParsingInput:  "parsing input",
	Processing:    "processing",
	WritingOutput: "writing output",
	Completed:     "completed",
}

func (s State) String() string {
	if s < Uninitialized || int(s) >= len(stateNames) {
		return "uninitialized"
	}
	return stateNames[s]
}

// Plugin drives one plugin process invocation. The zero value is not
// usable; build one with New.
type Plugin struct {
	state    State
	Metadata *flags.Metadata
	Input    elements.Group
	Warnings []parser.Diagnostic
	Salvaged bool

	output *elements.Group
	log    *diagnostic.Logger
}

// New builds a Plugin logging to os.Stderr.
func New() *Plugin {
	p := &Plugin{state: Uninitialized}
	p.log = diagnostic.Stderr(p.label)
	return p
}

func (p *Plugin) label() string { return p.state.String() }

// State reports the plugin's current life-cycle state.
func (p *Plugin) State() State { return p.state }

// Begin parses args into the plugin's board metadata, then parses its
// input file into an element tree. On success the plugin ends in state
// Processing, ready for the plugin's own transform; on failure it
// returns a *errkind.Error and logs it as a critical diagnostic against
// whichever state it failed in.
func (p *Plugin) Begin(args []string) error {
	p.state = ParsingFlags
	m, err := flags.Parse(args)
	if err != nil {
		p.log.Critical(err, errkind.Origin{})
		return err
	}
	p.Metadata = m

	p.state = ParsingInput
	src, err := token.NewFileSource(m.Input)
	if err != nil {
		wrapped := errkind.Wrap(errkind.PluginInputMissing, errkind.Origin{}, err)
		p.log.Critical(wrapped, errkind.Origin{})
		return wrapped
	}
	defer src.Close()

	pr := parser.New(src, m.Input)
	doc, salvaged, err := pr.Document()
	if err != nil {
		wrapped := errkind.Wrap(errkind.PluginInputSyntax, errkind.Origin{}, err)
		p.log.Critical(wrapped, errkind.Origin{})
		return wrapped
	}
	for _, w := range pr.Warnings() {
		p.log.Log(&errkind.Error{Kind: w.Kind, Origin: w.Origin, Err: fieldError(w.Message)}, w.Origin)
	}

	p.Input = *doc
	p.Salvaged = salvaged
	p.Warnings = pr.Warnings()
	p.state = Processing
	return nil
}

// SetOutput stages the element tree the plugin wants written when End is
// called with a success operation.
func (p *Plugin) SetOutput(els elements.Group) {
	p.output = &els
}

// End writes the staged output (if any and if op calls for one), then
// reports the exit code the host should interpret as op. A write failure
// is logged and reported through the library-failure exit-code range
// instead of op's own code.
func (p *Plugin) End(op exitcode.Operation) int {
	if op != exitcode.None && p.output != nil {
		p.state = WritingOutput
		if err := p.writeOutput(); err != nil {
			wrapped := errkind.Wrap(errkind.IO, errkind.Origin{}, err)
			p.log.Critical(wrapped, errkind.Origin{})
			code, _ := exitcode.ForLibraryFailure(int(p.state))
			p.state = Completed
			return code
		}
	}
	p.state = Completed
	code, err := exitcode.ForOperation(op)
	if err != nil {
		code, _ = exitcode.ForLibraryFailure(int(WritingOutput))
	}
	return code
}

func (p *Plugin) writeOutput() error {
	f, err := os.Create(p.Metadata.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, el := range p.output.Children {
		if err := serial.Emit(f, el, primitives.FormatRaw); err != nil {
			return err
		}
	}
	return nil
}

// fieldError turns a diagnostic's free-text message into an error so it
// can travel inside an *errkind.Error's wrapped cause.
type fieldError string

func (e fieldError) Error() string { return string(e) }
