// Package fingerprint computes a deterministic content digest of a parsed
// document, so a warning or salvage diagnostic can be matched back to a
// specific input file without attaching the (possibly large, possibly
// confidential) board file itself to a support ticket.
package fingerprint

import (
	"bytes"
	"encoding/hex"

	"github.com/laminoid-pcb/sprintplugin/internal/elements"
	"github.com/laminoid-pcb/sprintplugin/internal/primitives"
	"github.com/laminoid-pcb/sprintplugin/internal/serial"
	"golang.org/x/crypto/blake2b"
)

// Digest is a BLAKE2b-256 content digest.
type Digest [blake2b.Size256]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Of re-serializes doc to its raw wire form and digests the result.
// Digesting the raw re-serialization rather than the original source
// bytes means two inputs that parsed to the same element tree (differing
// only in whitespace, comments, or field order) fingerprint identically.
func Of(doc elements.Group) (Digest, error) {
	var buf bytes.Buffer
	for _, el := range doc.Children {
		if err := serial.Emit(&buf, el, primitives.FormatRaw); err != nil {
			return Digest{}, err
		}
	}
	return blake2b.Sum256(buf.Bytes()), nil
}
