package token

import "github.com/laminoid-pcb/sprintplugin/internal/errkind"

// Tokenizer drives the Mealy state machine over a Source, yielding a
// sequence of typed Tokens. It tracks line/column position using the rule:
// any '\r', or '\n' not immediately following '\r', advances the line and
// resets the column; every other character, recorded or not, advances the
// column, except one read directly after a line-break character.
// The very first character read never advances the column (the preloaded
// flag suppresses it), so the first token of a document starts at (1, 1).
//
// At end of input the tokenizer synthesizes a single trailing newline, so
// that a token terminated by EOF (e.g. a bare trailing word) is reported
// complete before the EOF signal surfaces to the caller.
type Tokenizer struct {
	source Source
	name   string

	origin    Origin
	preloaded bool
	lastCR    bool
	lastLF    bool

	nextChr   rune
	nextState state
	lastEOF   bool
}

// NewTokenizer wraps source, labelling any reported Origin with name (the
// file path, or "" for in-memory sources).
func NewTokenizer(source Source, name string) *Tokenizer {
	return &Tokenizer{
		source: source,
		name:   name,
		origin: Origin{Line: 1, Column: 1, Source: name},
	}
}

// Close releases the underlying source.
func (t *Tokenizer) Close() error {
	return t.source.Close()
}

// readAndCount reads the next rune from the source (or synthesizes a
// trailing '\n' at true EOF) and updates position tracking. It returns
// false exactly once: the call that discovers end of input.
func (t *Tokenizer) readAndCount() bool {
	if t.lastEOF {
		return false
	}
	r, ok := t.source.ReadRune()
	if !ok {
		t.nextChr = '\n'
		t.lastEOF = true
		return false
	}
	t.count(r)
	t.nextChr = r
	return true
}

func (t *Tokenizer) count(chr rune) {
	currentCR := chr == '\r'
	currentLF := chr == '\n'

	if currentCR || (currentLF && !t.lastCR) {
		t.origin.Line++
		t.origin.Column = 1
	} else if t.preloaded && !(currentCR || currentLF || t.lastCR || t.lastLF) {
		t.origin.Column++
	}

	t.preloaded = true
	t.lastCR = currentCR
	t.lastLF = currentLF
}

// Next reads the next token into tok. On success it returns nil. At end of
// input it returns an *errkind.Error of kind EOF; tok is either an empty
// TypeNone token (nothing had started scanning) or a TypeInvalid token
// (a token was mid-recording when input ran out).
func (t *Tokenizer) Next(tok *Token) error {
	var text []rune

	if !t.preloaded {
		if t.readAndCount() {
			t.nextState = firstState(t.nextChr)
		}
	}

	scanning := true
	for !t.lastEOF {
		currentChr := t.nextChr
		currentState := t.nextState

		if scanning && tokenType(currentState) != TypeNone {
			tok.Origin = t.origin
			scanning = false
		}

		t.readAndCount()
		t.nextState = nextState(currentState, t.nextChr)

		if recorded(currentState) {
			text = append(text, currentChr)
		}

		if !completes(currentState, t.nextState) {
			continue
		}

		tok.Type = tokenType(currentState)
		tok.Text = string(text)
		return nil
	}

	if scanning {
		tok.Type = TypeNone
		tok.Text = ""
		tok.Origin = t.origin
	} else {
		tok.Type = TypeInvalid
		tok.Text = string(text)
	}
	return errkind.At(errkind.EOF, tok.Origin)
}
