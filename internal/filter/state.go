package filter

import "fmt"

// State identifies where the filter is within the text being processed.
type State int

// The closed set of filter states. Initial is only used before the
// machine is primed into NormalText.
const (
	Initial State = iota
	NormalText
	DoubleQuotedText
	SingleQuotedText
	EscapedDoubleQuoteText
	EscapedSingleQuoteText
	StartComment
	LineComment
	BlockComment
	EndBlockComment
	Done

	numStates
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initial:
		return "Initial"
	case NormalText:
		return "NormalText"
	case DoubleQuotedText:
		return "DoubleQuotedText"
	case SingleQuotedText:
		return "SingleQuotedText"
	case EscapedDoubleQuoteText:
		return "EscapedDoubleQuoteText"
	case EscapedSingleQuoteText:
		return "EscapedSingleQuoteText"
	case StartComment:
		return "StartComment"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	case EndBlockComment:
		return "EndBlockComment"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("Unknown (%d)", int(s))
	}
}

// States returns the states the machine can be in once running.
func States() []State {
	states := make([]State, 0, numStates-1)
	for s := NormalText; s < numStates; s++ {
		states = append(states, s)
	}
	return states
}

// StateNames returns the names of the states returned by States.
func StateNames() []string {
	states := States()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return names
}
