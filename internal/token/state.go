package token

// state is the tokenizer's Mealy-machine state. The set is closed and
// small enough to test exhaustively with a state-transition table.
type state int

const (
	stateScanning state = iota
	stateInvalid
	stateComment
	stateWord
	stateNumber
	stateStringStart
	stateString
	stateStringEnd
	stateValueSep
	stateTupleSep
	stateStmtSep
	stateStmtTerm
)

const (
	commentPrefix   = '#'
	valueSepChar    = '='
	tupleSepChar    = '/'
	stmtSepChar     = ','
	stmtTermChar    = ';'
	stringDelimChar = '|'
)

func validState(s state) bool {
	return s >= stateScanning && s <= stateStmtTerm
}

// firstState computes the state a fresh tokenizer transitions into upon
// reading its very first character, by feeding it through nextState from
// the scanning state.
func firstState(first rune) state {
	return nextState(stateScanning, first)
}

// nextState computes the next state given the current state and the next
// character read, mirroring the original's sprint_tokenizer_state_next
// transition table plus one rule it lacks: the string-opening rule for '|'
// below.
func nextState(current state, next rune) state {
	// Enclosed strings: '|' or any newline terminates with string-end;
	// otherwise remain in string.
	if current == stateStringStart || current == stateString {
		if next == stringDelimChar || next == '\n' || next == '\r' {
			return stateStringEnd
		}
		return stateString
	}

	// Comments run to end of line; '#' (outside a string, handled above)
	// always (re)enters a comment.
	if (current == stateComment && next != '\n' && next != '\r') || next == commentPrefix {
		return stateComment
	}

	// The string delimiter both opens and closes a string: reaching it from
	// any non-string state starts a new string (the delimiter character
	// itself is not recorded, like the other single-character separators'
	// surrounding states).
	if next == stringDelimChar {
		return stateStringStart
	}

	// Whitespace returns to scanning.
	if next == ' ' || next == '\t' || next == '\n' || next == '\r' {
		return stateScanning
	}

	// Words: letters and underscore.
	if (next >= 'A' && next <= 'Z') || (next >= 'a' && next <= 'z') || next == '_' {
		return stateWord
	}

	// Numbers: digits, or '-' as long as it isn't continuing a number or word.
	if (next >= '0' && next <= '9') || (next == '-' && current != stateNumber && current != stateWord) {
		return stateNumber
	}

	// Single-character separators and terminator.
	switch next {
	case valueSepChar:
		return stateValueSep
	case tupleSepChar:
		return stateTupleSep
	case stmtSepChar:
		return stateStmtSep
	case stmtTermChar:
		return stateStmtTerm
	}

	return stateInvalid
}

// recorded reports whether a character read while in s should be appended
// to the token's text buffer.
func recorded(s state) bool {
	switch s {
	case stateInvalid, stateWord, stateNumber, stateString,
		stateValueSep, stateTupleSep, stateStmtSep, stateStmtTerm:
		return true
	default:
		return false
	}
}

// completes reports whether transitioning from current to next ends the
// token that started in current.
func completes(current, next state) bool {
	switch current {
	case stateScanning, stateComment, stateStringStart, stateString:
		return false
	case stateWord, stateNumber, stateStringEnd:
		return current != next
	default:
		// invalid and the four single-character separators always
		// complete after exactly one character.
		return true
	}
}

// tokenType maps a completed state to the Type the resulting token is
// tagged with.
func tokenType(s state) Type {
	switch s {
	case stateScanning, stateComment:
		return TypeNone
	case stateInvalid:
		return TypeInvalid
	case stateWord:
		return TypeWord
	case stateNumber:
		return TypeNumber
	case stateStringStart, stateString, stateStringEnd:
		return TypeString
	case stateValueSep:
		return TypeValueSep
	case stateTupleSep:
		return TypeTupleSep
	case stateStmtSep:
		return TypeStmtSep
	case stateStmtTerm:
		return TypeStmtTerm
	default:
		return TypeNone
	}
}
