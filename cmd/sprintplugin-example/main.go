// Command sprintplugin-example is a minimal plugin: it parses its input
// file unchanged, logs a diagnostic (with a content fingerprint) if the
// parser had to salvage anything, and asks the host to replace the
// selection with the exact elements it read — demonstrating the full
// plugin life cycle without performing a transform of its own.
package main

import (
	"fmt"
	"os"

	"github.com/laminoid-pcb/sprintplugin/internal/diagnostic"
	"github.com/laminoid-pcb/sprintplugin/plugin/exitcode"
	"github.com/laminoid-pcb/sprintplugin/plugin/fingerprint"
	"github.com/laminoid-pcb/sprintplugin/plugin/lifecycle"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	p := lifecycle.New()

	if err := p.Begin(args); err != nil {
		return failureCode(p)
	}

	if p.Salvaged {
		log := diagnostic.Stderr(func() string { return p.State().String() })
		if digest, ferr := fingerprint.Of(p.Input); ferr == nil {
			fmt.Fprintf(os.Stderr, "input required recovery, fingerprint %s\n", digest)
		} else {
			log.Log(ferr, emptyOrigin{})
		}
		for _, w := range p.Warnings {
			fmt.Fprintf(os.Stderr, "%s: %s\n", w.Kind, w.Message)
		}
	}

	p.SetOutput(p.Input)
	return p.End(exitcode.ReplaceAbsolute)
}

func failureCode(p *lifecycle.Plugin) int {
	code, err := exitcode.ForLibraryFailure(int(p.State()))
	if err != nil {
		return exitcode.FailedLibraryStart
	}
	return code
}

// emptyOrigin satisfies fmt.Stringer for a diagnostic that isn't tied to a
// specific source position.
type emptyOrigin struct{}

func (emptyOrigin) String() string { return "-" }
