package token

import (
	"strconv"
	"strings"

	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
)

// Type is the tag a completed Token carries.
type Type int

const (
	TypeNone Type = iota
	TypeInvalid
	TypeWord
	TypeNumber
	TypeString
	TypeValueSep
	TypeStmtSep
	TypeTupleSep
	TypeStmtTerm
)

var typeNames = [...]string{
	TypeNone:     "none",
	TypeInvalid:  "invalid",
	TypeWord:     "word",
	TypeNumber:   "number",
	TypeString:   "string",
	TypeValueSep: "value separator",
	TypeStmtSep:  "statement separator",
	TypeTupleSep: "tuple separator",
	TypeStmtTerm: "terminator",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Token is one lexical unit: its Type, the recorded text (for the four
// single-character separators, that one character), and the Origin of its
// first recorded character.
type Token struct {
	Type   Type
	Text   string
	Origin Origin
}

const (
	trueWord  = "true"
	falseWord = "false"
)

// Ident returns t's text verbatim, for word tokens used as identifiers
// (element tags, field names, layer/form/enum keywords).
func (t Token) Ident() string { return t.Text }

// Bool parses a word token as a case-insensitive true/false keyword.
func (t Token) Bool() (bool, error) {
	if t.Type != TypeWord {
		return false, errkind.At(errkind.ArgFormat, t.Origin)
	}
	switch strings.ToLower(t.Text) {
	case trueWord:
		return true, nil
	case falseWord:
		return false, nil
	default:
		return false, errkind.At(errkind.ArgFormat, t.Origin)
	}
}

// Int32 parses a number token as a base-10 32-bit signed integer; the whole
// buffer must be consumed with no overflow.
func (t Token) Int32() (int32, error) {
	if t.Type != TypeNumber {
		return 0, errkind.At(errkind.ArgFormat, t.Origin)
	}
	if t.Text == "" {
		return 0, errkind.At(errkind.ArgIncomplete, t.Origin)
	}
	n, err := strconv.ParseInt(t.Text, 10, 32)
	if err != nil {
		return 0, errkind.Wrap(errkind.ArgFormat, t.Origin, err)
	}
	return int32(n), nil
}

// StringValue returns the unescaped contents of a string token; the format
// has no escape sequences, so this is the recorded text verbatim.
func (t Token) StringValue() (string, error) {
	if t.Type != TypeString {
		return "", errkind.At(errkind.ArgFormat, t.Origin)
	}
	return t.Text, nil
}
