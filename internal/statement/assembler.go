package statement

import (
	"github.com/laminoid-pcb/sprintplugin/internal/errkind"
	"github.com/laminoid-pcb/sprintplugin/internal/token"
)

// Assembler turns a Tokenizer's flat token stream into Statements.
type Assembler struct {
	tok *token.Tokenizer

	lookahead    token.Token
	hasLookahead bool

	// afterTerm is true when the statement about to be assembled is the
	// first one since a ';' (or since the start of the document), and so
	// carries FlagFirst. It is false while a statement is in progress or
	// after one ended with ',' or an error, which is when a sync request
	// has tokens to discard.
	afterTerm bool
}

// NewAssembler wraps tok.
func NewAssembler(tok *token.Tokenizer) *Assembler {
	return &Assembler{tok: tok, afterTerm: true}
}

func (a *Assembler) next() (token.Token, error) {
	if a.hasLookahead {
		a.hasLookahead = false
		return a.lookahead, nil
	}
	var tk token.Token
	err := a.tok.Next(&tk)
	return tk, err
}

func (a *Assembler) peek() (token.Token, error) {
	if a.hasLookahead {
		return a.lookahead, nil
	}
	var tk token.Token
	err := a.tok.Next(&tk)
	if err != nil {
		return tk, err
	}
	a.lookahead = tk
	a.hasLookahead = true
	return tk, nil
}

// resync discards tokens up to and including the next statement terminator,
// or returns the tokenizer's EOF error if none remains.
func (a *Assembler) resync() error {
	for {
		tk, err := a.next()
		if err != nil {
			return err
		}
		if tk.Type == token.TypeStmtTerm {
			return nil
		}
	}
}

// Next assembles the next "NAME[INDEX][=VALUE]" statement, terminated by a
// ',' or ';' token which is consumed but not otherwise reported back except
// through the returned terminatesElement flag. If sync is true and the
// previous call did not end at a ';' (it stopped at ',' or on an error),
// Next first discards tokens up to and including the next ';' before
// assembling; after a ';' there is nothing to discard. A bare resync with
// no statement following is reported as whatever error ends the stream.
//
// Next returns errkind.EOF once the stream is exhausted with no partial
// statement pending, and an errkind.Syntax error (carrying the offending
// token's Origin) if the stream does not match the statement grammar.
func (a *Assembler) Next(sync bool) (stmt Statement, terminatesElement bool, err error) {
	if sync && !a.afterTerm {
		if err := a.resync(); err != nil {
			return Statement{}, false, err
		}
		a.afterTerm = true
	}

	name, err := a.next()
	if err != nil {
		return Statement{}, false, err
	}
	if name.Type != token.TypeWord {
		return Statement{}, false, errkind.At(errkind.Syntax, name.Origin)
	}

	stmt = Statement{
		Name:   name.Ident(),
		Origin: name.Origin,
	}
	if a.afterTerm {
		stmt.Flags |= FlagFirst
	}
	a.afterTerm = false

	if peeked, perr := a.peek(); perr == nil && peeked.Type == token.TypeNumber {
		idx, ierr := peeked.Int32()
		if ierr != nil {
			return Statement{}, false, ierr
		}
		a.hasLookahead = false
		stmt.Index = idx
		stmt.Flags |= FlagHasIndex
	}

	if peeked, perr := a.peek(); perr == nil && peeked.Type == token.TypeValueSep {
		a.hasLookahead = false
		stmt.Flags |= FlagHasValue
		if err := a.readValue(&stmt); err != nil {
			return Statement{}, false, err
		}
	}

	term, err := a.next()
	if err != nil {
		return Statement{}, false, err
	}
	switch term.Type {
	case token.TypeStmtTerm:
		a.afterTerm = true
		return stmt, true, nil
	case token.TypeStmtSep:
		a.afterTerm = false
		return stmt, false, nil
	default:
		return Statement{}, false, errkind.At(errkind.Syntax, term.Origin)
	}
}

func (a *Assembler) readValue(stmt *Statement) error {
	val, err := a.next()
	if err != nil {
		return err
	}
	switch val.Type {
	case token.TypeWord:
		stmt.ValueKind = ValueWord
		stmt.Word = val.Ident()
		return nil
	case token.TypeString:
		s, err := val.StringValue()
		if err != nil {
			return err
		}
		stmt.ValueKind = ValueString
		stmt.Str = s
		return nil
	case token.TypeNumber:
		n, err := val.Int32()
		if err != nil {
			return err
		}
		if peeked, perr := a.peek(); perr == nil && peeked.Type == token.TypeTupleSep {
			a.hasLookahead = false
			yTok, err := a.next()
			if err != nil {
				return err
			}
			y, err := yTok.Int32()
			if err != nil {
				return err
			}
			stmt.ValueKind = ValueTuple
			stmt.Number = n
			stmt.TupleY = y
			return nil
		}
		stmt.ValueKind = ValueNumber
		stmt.Number = n
		return nil
	default:
		return errkind.At(errkind.Syntax, val.Origin)
	}
}
