package filter

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when no behaviour exists for a state.
var ErrUnknownState = errors.New("unknown state")

// behaviour decides, from the next input character, what to emit and
// which state to move to. Implementations hold no data of their own.
type behaviour interface {
	next(m *machine) State
}

// behaviours is indexed by State. Initial has no behaviour.
var behaviours = [numStates]behaviour{
	NormalText:             normalText{},
	DoubleQuotedText:       doubleQuotedText{},
	SingleQuotedText:       singleQuotedText{},
	EscapedDoubleQuoteText: escapedText{owner: DoubleQuotedText},
	EscapedSingleQuoteText: escapedText{owner: SingleQuotedText},
	StartComment:           startComment{},
	LineComment:            lineComment{},
	BlockComment:           blockComment{},
	EndBlockComment:        endBlockComment{},
	Done:                   done{},
}

// behaviourFor looks up the behaviour for a state.
func behaviourFor(s State) (behaviour, error) {
	if s <= Initial || s >= numStates {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, s)
	}
	return behaviours[s], nil
}

// normalText passes characters through and watches for quotes and
// the slash that may open a comment.
type normalText struct{}

func (normalText) next(m *machine) State {
	c := m.read()
	switch c {
	case eof:
		return Done
	case '"':
		m.emit(c)
		return DoubleQuotedText
	case '\'':
		m.emit(c)
		return SingleQuotedText
	case '/':
		return StartComment
	default:
		m.emit(c)
		return NormalText
	}
}

// doubleQuotedText is inside "..." where comment markers are inert.
type doubleQuotedText struct{}

func (doubleQuotedText) next(m *machine) State {
	c := m.read()
	switch c {
	case eof:
		return Done
	case '"':
		m.emit(c)
		return NormalText
	case '\\':
		m.emit(c)
		return EscapedDoubleQuoteText
	default:
		m.emit(c)
		return DoubleQuotedText
	}
}

// singleQuotedText is inside '...' where comment markers are inert.
type singleQuotedText struct{}

func (singleQuotedText) next(m *machine) State {
	c := m.read()
	switch c {
	case eof:
		return Done
	case '\'':
		m.emit(c)
		return NormalText
	case '\\':
		m.emit(c)
		return EscapedSingleQuoteText
	default:
		m.emit(c)
		return SingleQuotedText
	}
}

// escapedText follows a backslash inside quotes. Whatever comes next is
// emitted as-is and the owning quote state resumes.
type escapedText struct {
	owner State
}

func (e escapedText) next(m *machine) State {
	c := m.read()
	if c == eof {
		return Done
	}
	m.emit(c)
	return e.owner
}

// startComment follows a slash in normal text.
type startComment struct{}

func (startComment) next(m *machine) State {
	c := m.read()
	switch c {
	case eof:
		// A lone trailing slash is dropped.
		return Done
	case '/':
		return LineComment
	case '*':
		return BlockComment
	default:
		m.emit('/')
		m.emit(c)
		return NormalText
	}
}

// lineComment drops everything up to, but not including, the newline.
type lineComment struct{}

func (lineComment) next(m *machine) State {
	c := m.read()
	switch c {
	case eof:
		return Done
	case '\n':
		m.emit(c)
		return NormalText
	default:
		return LineComment
	}
}

// blockComment drops everything until a star that may close it.
type blockComment struct{}

func (blockComment) next(m *machine) State {
	switch m.read() {
	case eof:
		return Done
	case '*':
		return EndBlockComment
	default:
		return BlockComment
	}
}

// endBlockComment has just seen a star inside a block comment.
type endBlockComment struct{}

func (endBlockComment) next(m *machine) State {
	switch m.read() {
	case eof:
		return Done
	case '/':
		return NormalText
	case '*':
		return EndBlockComment
	default:
		return BlockComment
	}
}

// done never reads.
type done struct{}

func (done) next(*machine) State {
	return Done
}
