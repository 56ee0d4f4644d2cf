// Package filter removes C-style line and block comments from text while
// leaving comment-like sequences inside quoted strings untouched.
//
// The filter is a single-pass finite state machine over bytes. Each state
// has a stateless behaviour that reads one character, optionally emits
// output and names the next state. The machine stops once the input is
// exhausted.
package filter

// Tracer is called for each state transition.
type Tracer func(from, to State)

// Option configures a Filter.
type Option func(*Filter)

// WithTracer reports every state transition to t.
func WithTracer(t Tracer) Option {
	return func(f *Filter) {
		f.tracer = t
	}
}

// Filter removes comments from text. A Filter is safe for concurrent use.
type Filter struct {
	tracer Tracer
}

// New creates a Filter.
func New(opts ...Option) *Filter {
	f := &Filter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFilter = New()

// RemoveComments returns text with // and /* */ comments removed.
func RemoveComments(text string) string {
	return defaultFilter.RemoveComments(text)
}

// RemoveComments returns text with // and /* */ comments removed.
// Unterminated comments and strings simply run to the end of the input.
func (f *Filter) RemoveComments(text string) string {
	m := newMachine(text)

	current := f.transition(Initial, NormalText)
	for current != Done {
		b, err := behaviourFor(current)
		if err != nil {
			panic(err)
		}
		current = f.transition(current, b.next(m))
	}

	return m.output.String()
}

// transition moves from one state to another, reporting real changes.
func (f *Filter) transition(from, to State) State {
	if to != from && f.tracer != nil {
		f.tracer(from, to)
	}
	return to
}
